package application

import (
	"context"
	"encoding/json"

	"checkout-gateway/infrastructure/rabbitmq"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConsumeDeferredWebhook replays a parked delivery. The payload is
// verified again from the raw bytes; nothing on the queue is trusted
// as pre-authenticated.
func (us *GatewayApplication) ConsumeDeferredWebhook(ctx context.Context, msg []byte) error {
	job := rabbitmq.DeferredWebhook{}
	if err := json.Unmarshal(msg, &job); err != nil {
		us.Logger.With(zapcore.Field{
			Key:       "payload",
			Type:      zapcore.ReflectType,
			Interface: string(msg),
		}).Error(err.Error())
		return err
	}

	data, err := us.Verifier.WebhookData(job.Body, job.Hash)
	if err != nil {
		us.Logger.With(zap.Int("attempt", job.Attempt)).Error(err.Error())
		return err
	}

	return us.processWebhook(ctx, data, job.Body, job.Hash, true)
}
