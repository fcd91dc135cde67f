package event

import (
	"github.com/c360/ephyscore/channel"
	"github.com/c360/ephyscore/errors"
	"github.com/c360/ephyscore/metadata"
)

// SpikeEvent carries a detected waveform bound to a SpikeChannel: one
// threshold per electrode lane and a channel-major sample block.
type SpikeEvent struct {
	Descriptor   *channel.SpikeChannel
	Timestamp    uint64
	Thresholds   []float32
	Samples      []float32
	totalSamples uint32
	Metadata     metadata.Values
}

// NewSpikeEvent validates thresholds against desc.NumChannels() and
// consumes buf, moving its backing array into the event without
// copying. A second call against the same buf fails with
// ErrBufferNotReady because buf's take() can only succeed once.
func NewSpikeEvent(desc *channel.SpikeChannel, timestamp uint64, thresholds []float32, buf *SpikeBuffer, meta metadata.Values) (*SpikeEvent, error) {
	if desc == nil {
		return nil, errors.WrapInvalid(errors.ErrDescriptorMissing, "SpikeEvent", "New", "descriptor is nil")
	}
	if buf == nil {
		return nil, errors.WrapInvalid(errors.ErrBufferNotReady, "SpikeEvent", "New", "buffer is nil")
	}
	if err := checkMetadataShape(desc.EventMetadataFields, meta); err != nil {
		return nil, err
	}
	if uint32(len(thresholds)) != desc.NumChannels() {
		return nil, errors.WrapInvalid(errors.ErrBufferShapeMismatch, "SpikeEvent", "New", "threshold count does not match descriptor channel count")
	}
	if buf.IsReady() && uint32(len(buf.samples)) != desc.NumChannels()*desc.TotalSamples() {
		return nil, errors.WrapInvalid(errors.ErrBufferShapeMismatch, "SpikeEvent", "New", "buffer shape does not match descriptor")
	}

	samples, err := buf.take()
	if err != nil {
		return nil, err
	}

	return &SpikeEvent{
		Descriptor:   desc,
		Timestamp:    timestamp,
		Thresholds:   append([]float32(nil), thresholds...),
		Samples:      samples,
		totalSamples: desc.TotalSamples(),
		Metadata:     meta,
	}, nil
}

// GetDataPointer returns the sub-slice of Samples for electrode lane
// channel, starting at channel*totalSamples, matching the channel-major
// layout every SpikeChannel payload uses.
func (s *SpikeEvent) GetDataPointer(channelIdx uint32) ([]float32, error) {
	if channelIdx >= uint32(len(s.Thresholds)) {
		return nil, errors.WrapInvalid(errors.ErrChannelOutOfRange, "SpikeEvent", "GetDataPointer", "channel index out of range")
	}
	start := channelIdx * s.totalSamples
	return s.Samples[start : start+s.totalSamples], nil
}
