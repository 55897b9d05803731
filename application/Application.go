package application

import (
	"context"

	"checkout-gateway/domain/constants"
	"checkout-gateway/domain/incoming"
	"checkout-gateway/domain/repositories"
	"checkout-gateway/infrastructure/database_mgo"
	"checkout-gateway/infrastructure/database_mgo/cards"
	"checkout-gateway/infrastructure/database_mgo/order"
	"checkout-gateway/infrastructure/kafka"
	"checkout-gateway/infrastructure/rabbitmq"
	"checkout-gateway/infrastructure/redis_cache"
	"checkout-gateway/infrastructure/service/gateway"
	"checkout-gateway/utils/configs"
	"checkout-gateway/utils/gpooling"
	"checkout-gateway/utils/telegram"

	"go.uber.org/zap"
)

type GatewayApplication struct {
	Config            *configs.Config
	Logger            *zap.Logger
	Verifier          *incoming.Verifier
	OrderRepository   repositories.OrderRepository
	CardRepository    repositories.CardRepository
	GatewayRepository repositories.GatewayRepository
	Queue             repositories.IQueue
	Events            repositories.IEvents
	Notifier          repositories.INotifier
	IPool             gpooling.IPool
}

func NewGatewayApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) *GatewayApplication {
	opts := rabbitmq.NewOptions().WithUri(config.QueueUri).WithDurable(true)

	queue, _ := rabbitmq.NewRabbiMQ(*opts, logger, pool)
	db := database_mgo.NewMongoDBconnection(config.MongoURI)
	events, _ := kafka.NewConnection(config.KafkaConfig.Brokers)

	application := &GatewayApplication{
		Config:            config,
		Logger:            logger,
		Verifier:          incoming.NewVerifier(config.Gateway.AppKey, logger),
		OrderRepository:   order.NewOrderCollectionImpl(db, config.DBName),
		CardRepository:    cards.NewCardCollectionImpl(db, config.DBName),
		GatewayRepository: gateway.NewRepoImpl(config.Gateway, redis_cache.NewTokenCache(config.Redis), logger),
		Queue:             queue,
		Events:            events,
		Notifier:          telegram.Notifier{BotToken: config.TelegramBotToken},
		IPool:             pool,
	}

	application.RegisterConsumerTopic([]string{constants.TopicDeferredWebhook})

	return application
}

func (us *GatewayApplication) RegisterConsumerTopic(topics []string) {
	for _, topic := range topics {
		switch topic {
		case constants.TopicDeferredWebhook:
			_ = us.Queue.WithConsumerTopic(us.ConsumeDeferredWebhook, topic)
		}
	}
}

// ValidateCredentials probes the configured account the same way the
// settings screen does before saving them.
func (us *GatewayApplication) ValidateCredentials(ctx context.Context) bool {
	return us.GatewayRepository.ValidateCredentials(ctx)
}
