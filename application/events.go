package application

import (
	"encoding/json"

	"checkout-gateway/domain/entities"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type orderEvent struct {
	Event         string `json:"event"`
	OrderID       int64  `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Timestamp     int64  `json:"timestamp"`
}

// publishOrderEvent fans a terminal transition out to downstream
// consumers. Delivery is best effort and never blocks the caller.
func (us *GatewayApplication) publishOrderEvent(event string, order_dto *entities.OrderEntity) {
	if us.Events == nil {
		return
	}

	payload, err := json.Marshal(orderEvent{
		Event:         event,
		OrderID:       order_dto.OrderID,
		TransactionID: order_dto.TransactionID,
		Status:        order_dto.Status.StatusString(),
		Timestamp:     order_dto.UpdatedAt.Unix(),
	})
	if err != nil {
		us.Logger.With(zapcore.Field{
			Key:       "order",
			Type:      zapcore.ReflectType,
			Interface: order_dto,
		}).Error(err.Error())
		return
	}

	topic := us.Config.KafkaConfig.PaymentTopic
	key := cast.ToString(order_dto.OrderID)
	us.IPool.Submit(func() {
		if err := us.Events.Publish(topic, key, payload); err != nil {
			us.Logger.With(
				zap.String("topic", topic),
				zap.String("event", event),
			).Error(err.Error())
		}
	})
}
