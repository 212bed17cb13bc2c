package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/shared/event"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewWriteFailure(t *testing.T) {
	failure := event.NewWriteFailure("rooms", event.OperationUpdate, "101", errors.New("connection reset"))

	assert.Equal(t, "rooms", failure.Collection)
	assert.Equal(t, event.OperationUpdate, failure.Operation)
	assert.Equal(t, "101", failure.Key)
	assert.Equal(t, "connection reset", failure.Error)
	assert.False(t, failure.At.IsZero())
}

func TestNew_WithoutBrokersLogsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	hook := event.New(&config.Config{}, client)

	// no SendMessages expectation: publishing would fail the test
	hook.WriteFailed(context.Background(), event.NewWriteFailure("halls", event.OperationInsert, "", errors.New("boom")))
}

func TestKafkaHook_Publishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Kafka.Topic.WriteFailure = "frontdesk.write-failure"

	sent := make(chan kafka.Message, 1)

	client.EXPECT().SendMessages(gomock.Any(), "frontdesk.write-failure", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			sent <- messages[0]

			return errors.New("broker unavailable")
		})

	event.New(cfg, client).WriteFailed(context.Background(), event.NewWriteFailure("bar_sales", event.OperationInsert, "", errors.New("boom")))

	select {
	case message := <-sent:
		assert.Equal(t, "bar_sales", message.Key)
		assert.Equal(t, event.OperationInsert, message.Headers["operation"])
	case <-time.After(time.Second):
		t.Fatal("write failure was not published")
	}
}
