package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	OperationInsert = "insert"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationUpsert = "upsert"
)

// WriteFailure describes a persistence write that did not go through.
type WriteFailure struct {
	Collection string    `json:"collection"`
	Operation  string    `json:"operation"`
	Key        string    `json:"key,omitempty"`
	Error      string    `json:"error"`
	At         time.Time `json:"at"`
}

// Hook observes failed writes. The error itself is still returned to the caller.
type Hook interface {
	WriteFailed(ctx context.Context, failure WriteFailure)
}

func NewWriteFailure(collection, operation, key string, err error) WriteFailure {
	return WriteFailure{
		Collection: collection,
		Operation:  operation,
		Key:        key,
		Error:      err.Error(),
		At:         timezone.Now(),
	}
}

type logHook struct{}

func NewLogHook() Hook {
	return logHook{}
}

func (logHook) WriteFailed(_ context.Context, failure WriteFailure) {
	log.Error().
		Str("collection", failure.Collection).
		Str("operation", failure.Operation).
		Str("key", failure.Key).
		Str("error", failure.Error).
		Msg("write failed")
}

type kafkaHook struct {
	client kafka.Client
	topic  string
	next   Hook
}

func NewKafkaHook(client kafka.Client, topic string) Hook {
	return &kafkaHook{
		client: client,
		topic:  topic,
		next:   NewLogHook(),
	}
}

func (k *kafkaHook) WriteFailed(ctx context.Context, failure WriteFailure) {
	k.next.WriteFailed(ctx, failure)

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   failure.Collection,
			Value: failure,
			Headers: map[string]string{
				"operation": failure.Operation,
			},
		}

		if err := k.client.SendMessages(c, k.topic, message); err != nil {
			log.Warn().Err(err).Str("topic", k.topic).Msg("failed to publish write failure")
		}
	}()
}

// New publishes to Kafka when brokers are configured and only logs otherwise.
func New(cfg *config.Config, client kafka.Client) Hook {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info().Msg("No Kafka brokers configured, write failures are logged only")

		return NewLogHook()
	}

	return NewKafkaHook(client, cfg.Kafka.Topic.WriteFailure)
}
