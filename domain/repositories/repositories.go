package repositories

import (
	"context"

	"checkout-gateway/domain/entities"
	"checkout-gateway/infrastructure/rabbitmq"
	"checkout-gateway/infrastructure/service/gateway"

	"go.mongodb.org/mongo-driver/bson"
)

type OrderRepository interface {
	FindByOrderID(ctx context.Context, orderID int64) (*entities.OrderEntity, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*entities.OrderEntity, error)
	Create(ctx context.Context, entity *entities.OrderEntity) (*entities.OrderEntity, error)
	ReplaceByID(ctx context.Context, entity *entities.OrderEntity) (*entities.OrderEntity, error)
}

type CardRepository interface {
	FindByCardID(ctx context.Context, cardID string) (*entities.CardEntity, error)
	Save(ctx context.Context, entity *entities.CardEntity) (*entities.CardEntity, error)
	UpdateMetadata(ctx context.Context, cardID string, fields bson.M) (*entities.CardEntity, error)
}

// GatewayRepository is the outbound surface to the payment processor. Every
// endpoint operation returns a Response; only the authorization-header step
// can error.
type GatewayRepository interface {
	GetAccessToken(ctx context.Context) string
	GetAuthorizationHeaders(ctx context.Context, addCompanyId bool) (map[string]string, error)
	ValidateCredentials(ctx context.Context) bool

	GetPaymentLink(ctx context.Context, linkId string, fields ...string) *gateway.Response
	CreatePaymentLink(ctx context.Context, body map[string]interface{}) *gateway.Response

	GetTransaction(ctx context.Context, transactionId string, fields ...string) *gateway.Response
	CaptureTransaction(ctx context.Context, transactionId string, amount int64) *gateway.Response
	RefundTransaction(ctx context.Context, transactionId string, amount int64) *gateway.Response
	CancelTransaction(ctx context.Context, transactionId string) *gateway.Response

	GetCustomer(ctx context.Context, customerId string, fields ...string) *gateway.Response
	CreateCustomer(ctx context.Context, body map[string]interface{}) *gateway.Response
	UpdateCustomer(ctx context.Context, customerId string, body map[string]interface{}) *gateway.Response

	GetCard(ctx context.Context, cardId string, fields ...string) *gateway.Response
	UpdateCard(ctx context.Context, cardId string, body map[string]interface{}) *gateway.Response
}

type IQueue interface {
	PublishDeferred(msg rabbitmq.DeferredWebhook, topic string) error
	WithConsumerTopic(fn func(ctx context.Context, msg []byte) error, topic string) error
}

type IEvents interface {
	Publish(topic string, key string, payload []byte) error
}

type INotifier interface {
	Notify(message string, channelId int64)
}
