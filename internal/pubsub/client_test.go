package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type samplePayload struct {
	MatchID string
	Winners []string
}

func TestProcessMessage(t *testing.T) {
	payload := samplePayload{MatchID: "m1", Winners: []string{"Alice", "Bob"}}
	data, err := msgpack.Marshal(payload)
	require.NoError(t, err)

	c := &client{}
	var decoded samplePayload
	require.NoError(t, c.ProcessMessage(data, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestProcessMessageInvalidData(t *testing.T) {
	c := &client{}
	var decoded samplePayload
	assert.Error(t, c.ProcessMessage([]byte{0xc1}, &decoded))
}

func TestMockRecordsCalls(t *testing.T) {
	mock := NewMock("test-project")

	require.NoError(t, mock.SendMessage(EventMatchRecorded, "payload"))
	require.Len(t, mock.SendMessageCalls, 1)
	assert.Equal(t, string(EventMatchRecorded), mock.SendMessageCalls[0].Topic)
	assert.Equal(t, "payload", mock.SendMessageCalls[0].Data)

	mock.Reset()
	assert.Empty(t, mock.SendMessageCalls)
}
