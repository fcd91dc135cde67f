package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ephyscore/channel"
)

func TestNewBinaryEvent_FloatArray(t *testing.T) {
	ec := channel.NewEventChannel(channel.FloatArray, testProvenance())
	ec.SetLength(4)
	assert.Equal(t, uint32(16), ec.DataSize())

	data := make([]byte, 16)
	ev, err := NewBinaryEvent[float32](ec, 0, 0, data, nil)
	require.NoError(t, err)
	assert.Len(t, ev.Payload, 16)
}

func TestNewBinaryEvent_ElementTypeMismatch(t *testing.T) {
	ec := channel.NewEventChannel(channel.FloatArray, testProvenance())
	ec.SetLength(4)
	_, err := NewBinaryEvent[float64](ec, 0, 0, make([]byte, 32), nil)
	assert.Error(t, err)
}

func TestNewBinaryEvent_PayloadTooSmall(t *testing.T) {
	ec := channel.NewEventChannel(channel.Int32Array, testProvenance())
	ec.SetLength(4)
	_, err := NewBinaryEvent[int32](ec, 0, 0, make([]byte, 8), nil)
	assert.Error(t, err)
}
