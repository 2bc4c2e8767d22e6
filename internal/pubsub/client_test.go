package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestNew_WithoutProjectIsNoop(t *testing.T) {
	c, err := New(context.Background(), "")
	require.NoError(t, err)
	defer c.Close()

	err = c.SendMessage(EventGameSubmitted, GameSubmitted{GameName: "Opener"})
	assert.NoError(t, err)
}

func TestProcessMessage_DecodesGameSubmitted(t *testing.T) {
	c, err := New(context.Background(), "")
	require.NoError(t, err)

	sent := GameSubmitted{
		GameDate:    time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC),
		GameName:    "Home vs Wolves",
		Inserted:    2,
		GameCreated: true,
	}
	data, err := msgpack.Marshal(sent)
	require.NoError(t, err)

	var got GameSubmitted
	require.NoError(t, c.ProcessMessage(data, &got))
	assert.Equal(t, sent.GameName, got.GameName)
	assert.Equal(t, 2, got.Inserted)
	assert.True(t, got.GameCreated)
	assert.True(t, sent.GameDate.Equal(got.GameDate))
}

func TestProcessMessage_RejectsGarbage(t *testing.T) {
	c, err := New(context.Background(), "")
	require.NoError(t, err)

	var got GameDeleted
	assert.Error(t, c.ProcessMessage([]byte{0xc1}, &got))
}
