package order

import (
	"context"
	"fmt"

	"checkout-gateway/domain/entities"
	"checkout-gateway/utils/helpers"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderCollection struct {
	collection *mongo.Collection
}

func NewOrderCollectionImpl(client *mongo.Client, dbName string) *OrderCollection {
	return &OrderCollection{
		collection: client.Database(dbName).Collection("orders"),
	}
}

func (o *OrderCollection) FindByOrderID(ctx context.Context, orderID int64) (res *entities.OrderEntity, err error) {
	err = o.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&res)
	return
}

func (o *OrderCollection) FindByTransactionID(ctx context.Context, transactionID string) (res *entities.OrderEntity, err error) {
	err = o.collection.FindOne(ctx, bson.M{"transaction_id": transactionID}).Decode(&res)
	return
}

func (o *OrderCollection) Create(ctx context.Context, entity *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	entity.CreatedAt = helpers.GetCurrentTime()
	entity.UpdatedAt = entity.CreatedAt

	_, err = o.collection.InsertOne(ctx, entity)

	if err == nil {
		res = entity
	}

	return
}

func (o *OrderCollection) ReplaceByID(ctx context.Context, entity *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	entity.UpdatedAt = helpers.GetCurrentTime()

	update, err := o.collection.ReplaceOne(ctx, bson.M{"order_id": entity.OrderID}, entity)

	if err != nil {
		return
	}

	if update.ModifiedCount == 0 {
		err = fmt.Errorf("ReplaceByID order_id %v not found", entity.OrderID)
	}
	res = entity

	return
}
