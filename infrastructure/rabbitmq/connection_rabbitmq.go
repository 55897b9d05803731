package rabbitmq

import (
	"context"
	"encoding/json"

	"checkout-gateway/utils/gpooling"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	Uri        string
	AutoAck    bool
	AutoDelete bool
	Durable    bool
	Exclusive  bool
	NoWait     bool
}

func NewOptions() *options {
	return &options{}
}

func (o *options) WithUri(uri string) *options {
	o.Uri = uri
	return o
}

func (o *options) WithDurable(durable bool) *options {
	o.Durable = durable
	return o
}

// DeferredWebhook is the queued payload for deferred webhook processing.
// Body and hash travel exactly as received; the consumer re-runs full
// verification because the queue is not a trust boundary.
type DeferredWebhook struct {
	Body    json.RawMessage `json:"body"`
	Hash    string          `json:"hash"`
	Attempt int             `json:"attempt"`
}

type RabbiMQ struct {
	Connection *amqp.Connection
	IPool      gpooling.IPool
	options
	*zap.Logger
}

func NewRabbiMQ(o options, log *zap.Logger, pool gpooling.IPool) (*RabbiMQ, error) {
	conn, err := amqp.Dial(o.Uri)

	if err != nil {
		panic(err)
	}

	return &RabbiMQ{
		IPool:      pool,
		Connection: conn,
		options:    o,
		Logger:     log,
	}, nil
}

func (r *RabbiMQ) PublishDeferred(msg DeferredWebhook, topic string) error {
	ch, err := r.Connection.Channel()

	if err != nil {
		return err
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		topic,
		"topic",
		r.Durable,
		true,
		r.Exclusive,
		r.NoWait,
		nil,
	)
	if err != nil {
		return err
	}

	send_data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	err = ch.Publish(
		topic, // exchange
		topic, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        send_data,
		})

	return err
}

func (r *RabbiMQ) WithConsumerTopic(fn func(ctx context.Context, msg []byte) error, topic_name string) (err error) {
	r.IPool.Submit(func() {
		ch, err := r.Connection.Channel()
		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-topic-queue-" + topic_name,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}
		defer ch.Close()

		err = ch.ExchangeDeclare(
			topic_name, // name
			"topic",
			r.Durable,   // durable
			true,        // delete when unused
			r.Exclusive, // exclusive
			r.NoWait,    // no-wait
			nil,         // arguments
		)
		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-exchange-" + topic_name,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}

		q, err := ch.QueueDeclare(
			topic_name,   // name
			true,         // durable
			r.AutoDelete, // delete when unused
			r.Exclusive,  // exclusive
			r.NoWait,     // no-wait
			nil,          // arguments
		)
		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-queue-" + topic_name,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}

		err = ch.QueueBind(
			q.Name,          // queue name
			topic_name+".#", // routing key
			topic_name,      // exchange
			false,
			nil,
		)

		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-queue-" + topic_name,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}

		msgs, err := ch.Consume(
			q.Name,      // queue
			"",          // consumer
			false,       // auto-ack
			r.Exclusive, // exclusive
			false,       // no-local
			false,       // no-wait
			nil,         // args
		)

		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-queue-" + topic_name,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}

		for d := range msgs {
			if err = fn(context.TODO(), d.Body); err != nil {
				r.Logger.With(zap.Error(err)).Error("consumer-" + topic_name)
			}
			_ = ch.Ack(d.DeliveryTag, false)
		}
	})

	return err
}
