package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	myconfig "library_server/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNoneModeIsNoop(t *testing.T) {
	p := Init(&myconfig.KafkaConfig{MessageMode: "none"})
	assert.NoError(t, p.Publish(context.Background(), []byte("k"), []byte("v")))
	assert.NoError(t, p.Close())
}

func TestOplogEventEncode(t *testing.T) {
	ev := OplogEvent{OplogID: 3, AdminID: 7, IP: "10.0.0.1", Action: "user_status", TargetID: 9, Reason: "spam", At: time.Unix(0, 0).UTC()}
	raw, err := ev.Encode()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.EqualValues(t, 7, got["admin_id"])
	assert.Equal(t, "user_status", got["action"])
	assert.Equal(t, []byte("7"), ev.Key())
}

func TestNewKafkaPublisherDefaultsTopic(t *testing.T) {
	p := NewKafkaPublisher(&myconfig.KafkaConfig{HostPort: "127.0.0.1:9092", Timeout: 1})
	assert.Equal(t, "library_oplog", p.writer.Topic)
}
