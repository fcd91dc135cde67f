package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpikeBuffer_LaneOutOfRange(t *testing.T) {
	sc := testSpikeChannel()
	buf := NewSpikeBuffer(sc)
	_, err := buf.Lane(4)
	assert.Error(t, err)
}

func TestSpikeBuffer_ReadyUntilConsumed(t *testing.T) {
	sc := testSpikeChannel()
	buf := NewSpikeBuffer(sc)
	assert.True(t, buf.IsReady())

	_, err := NewSpikeEvent(sc, 0, []float32{1, 2, 3, 4}, buf, nil)
	require.NoError(t, err)
	assert.False(t, buf.IsReady())
}

func TestSpikeBuffer_LaneIsWritable(t *testing.T) {
	sc := testSpikeChannel()
	buf := NewSpikeBuffer(sc)
	view, err := buf.Lane(1)
	require.NoError(t, err)
	require.Len(t, view, 40)
	view[0] = 42
	view2, _ := buf.Lane(1)
	assert.Equal(t, float32(42), view2[0])
}
