package kafka_test

import (
	"context"
	"testing"

	"playcourt/config"
	"playcourt/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:   "65f1c0a2b3d4e5f607182930",
		Value: map[string]string{"status": "approved"},
	}

	msg, err := message.ToKafkaMessage("booking-events")
	require.NoError(t, err)

	assert.Equal(t, "booking-events", msg.Topic)
	assert.Equal(t, []byte("65f1c0a2b3d4e5f607182930"), msg.Key)
	assert.JSONEq(t, `{"status":"approved"}`, string(msg.Value))
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage("booking-events")

	assert.Error(t, err)
}

func TestNew_DisabledDropsMessages(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	client := kafka.New(cfg)

	assert.NoError(t, client.SendMessages(context.Background(), "booking-events", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, client.Close())
}
