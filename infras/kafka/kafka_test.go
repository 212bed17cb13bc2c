package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Encode(t *testing.T) {
	msg := Message{
		Key:     "rooms",
		Value:   map[string]string{"operation": "update"},
		Headers: map[string]string{"source": "frontdesk", "operation": "update"},
	}

	encoded, err := msg.encode("frontdesk.write-failure")
	assert.NoError(t, err)

	assert.Equal(t, "frontdesk.write-failure", encoded.Topic)
	assert.Equal(t, []byte("rooms"), encoded.Key)
	assert.JSONEq(t, `{"operation":"update"}`, string(encoded.Value))

	if assert.Len(t, encoded.Headers, 2) {
		assert.Equal(t, "operation", encoded.Headers[0].Key)
		assert.Equal(t, "source", encoded.Headers[1].Key)
	}
}

func TestMessage_EncodeRejectsUnmarshalable(t *testing.T) {
	_, err := Message{Value: make(chan int)}.encode("t")
	assert.Error(t, err)
}

func TestSendMessages_Empty(t *testing.T) {
	client := &kafkaClientImpl{}

	assert.NoError(t, client.SendMessages(t.Context(), "t"))
}
