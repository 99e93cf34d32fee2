package notify

import (
	"context"

	kafkaGo "github.com/segmentio/kafka-go"
)

// KafkaSink writes serialized orders to a Kafka topic, keyed by order id so a
// partitioned consumer sees each order's messages in sequence.
type KafkaSink struct {
	writer *kafkaGo.Writer
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkaGo.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (s *KafkaSink) Write(ctx context.Context, key string, payload []byte) error {
	return s.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
