package event

import (
	"github.com/c360/ephyscore/channel"
	"github.com/c360/ephyscore/errors"
)

// SpikeBuffer is a one-shot writable scratch space for assembling a
// spike waveform. It is constructed ready, filled lane-by-lane by the
// source processor, and consumed exactly once by NewSpikeEvent, which
// moves its backing array into the event rather than copying it. Any
// access after that handoff fails with ErrBufferNotReady.
type SpikeBuffer struct {
	descriptor   *channel.SpikeChannel
	totalSamples uint32
	samples      []float32
	ready        bool
}

// NewSpikeBuffer allocates numChannels * totalSamples float32 elements
// for desc and marks the buffer ready for writing.
func NewSpikeBuffer(desc *channel.SpikeChannel) *SpikeBuffer {
	total := desc.TotalSamples()
	return &SpikeBuffer{
		descriptor:   desc,
		totalSamples: total,
		samples:      make([]float32, desc.NumChannels()*total),
		ready:        true,
	}
}

// Lane returns a writable view of totalSamples samples for electrode
// lane index while the buffer is ready. Addressing is channel-major:
// lane i starts at i*totalSamples.
func (b *SpikeBuffer) Lane(index uint32) ([]float32, error) {
	if !b.ready {
		return nil, errors.WrapInvalid(errors.ErrBufferNotReady, "SpikeBuffer", "Lane", "buffer already consumed")
	}
	if index >= b.descriptor.NumChannels() {
		return nil, errors.WrapInvalid(errors.ErrChannelOutOfRange, "SpikeBuffer", "Lane", "lane index out of range")
	}
	start := index * b.totalSamples
	return b.samples[start : start+b.totalSamples], nil
}

// IsReady reports whether the buffer has not yet been consumed.
func (b *SpikeBuffer) IsReady() bool { return b.ready }

// take consumes the buffer, returning its backing array and marking it
// not-ready. Only NewSpikeEvent may call this; further access to the
// SpikeBuffer value after take fails via IsReady/Lane's ready checks.
func (b *SpikeBuffer) take() ([]float32, error) {
	if !b.ready {
		return nil, errors.WrapInvalid(errors.ErrBufferNotReady, "SpikeBuffer", "take", "buffer already consumed")
	}
	if uint32(len(b.samples)) != b.descriptor.NumChannels()*b.totalSamples {
		return nil, errors.WrapInvalid(errors.ErrBufferShapeMismatch, "SpikeBuffer", "take", "buffer shape does not match descriptor")
	}
	samples := b.samples
	b.samples = nil
	b.ready = false
	return samples, nil
}
