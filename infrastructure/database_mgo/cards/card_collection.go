package cards

import (
	"context"
	"fmt"

	"checkout-gateway/domain/entities"
	"checkout-gateway/utils/helpers"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CardCollection struct {
	collection *mongo.Collection
}

func NewCardCollectionImpl(client *mongo.Client, dbName string) *CardCollection {
	return &CardCollection{
		collection: client.Database(dbName).Collection("cards"),
	}
}

func (c *CardCollection) FindByCardID(ctx context.Context, cardID string) (res *entities.CardEntity, err error) {
	err = c.collection.FindOne(ctx, bson.M{"card_id": cardID}).Decode(&res)
	return
}

// Save upserts by card id so replayed card_new webhooks stay harmless.
func (c *CardCollection) Save(ctx context.Context, entity *entities.CardEntity) (res *entities.CardEntity, err error) {
	entity.UpdatedAt = helpers.GetCurrentTime()
	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = entity.UpdatedAt
	}

	upsert := true
	_, err = c.collection.ReplaceOne(ctx, bson.M{"card_id": entity.CardID}, entity,
		&options.ReplaceOptions{Upsert: &upsert})

	if err == nil {
		res = entity
	}

	return
}

func (c *CardCollection) UpdateMetadata(ctx context.Context, cardID string, fields bson.M) (res *entities.CardEntity, err error) {
	fields["updated_at"] = helpers.GetCurrentTime()

	update, err := c.collection.UpdateOne(ctx, bson.M{"card_id": cardID}, bson.M{"$set": fields})
	if err != nil {
		return
	}

	if update.MatchedCount == 0 {
		return nil, fmt.Errorf("UpdateMetadata card_id %v not found", cardID)
	}

	return c.FindByCardID(ctx, cardID)
}
