package kafka

import (
	"strings"

	"github.com/Shopify/sarama"
)

// Storage wraps the payment-event producer. This side only produces;
// downstream systems own their consumer groups.
type Storage struct {
	sarama.SyncProducer
}

func NewConnection(brokers string) (storage Storage, err error) {
	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), nil)

	if err != nil {
		panic(err)
	}

	return Storage{
		SyncProducer: producer,
	}, err
}

func (s Storage) Publish(topic string, key string, payload []byte) error {
	_, _, err := s.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})

	return err
}
