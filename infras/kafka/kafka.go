package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"frontdesk/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	batchTimeout = 50 * time.Millisecond
	writeTimeout = 5 * time.Second
)

// Message is JSON encoded on the way out. Key picks the partition.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m Message) encode(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("marshal %T: %w", m.Value, err)
	}

	headers := make([]kafkaGo.Header, 0, len(m.Headers))
	for _, key := range slices.Sorted(maps.Keys(m.Headers)) {
		headers = append(headers, kafkaGo.Header{Key: key, Value: []byte(m.Headers[key])})
	}

	return kafkaGo.Message{
		Topic:   topic,
		Key:     []byte(m.Key),
		Value:   value,
		Headers: headers,
	}, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
}

func New(cfg *config.Config) Client {
	transport := &kafkaGo.Transport{}

	if sasl := cfg.Kafka.SASL; sasl.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: sasl.Username,
			Password: sasl.Password,
		}
	}

	return &kafkaClientImpl{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			BatchTimeout:           batchTimeout,
			WriteTimeout:           writeTimeout,
			RequiredAcks:           kafkaGo.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.encode(topic)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to encode kafka message")

			return fmt.Errorf("failed to encode kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	if err := k.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to send %d message(s) to %s: %w", len(msgs), topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("kafka messages sent")

	return nil
}
