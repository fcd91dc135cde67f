package codec

import (
	"errors"

	"github.com/c360/ephyscore/channel"
	stderrors "github.com/c360/ephyscore/errors"
	"github.com/c360/ephyscore/event"
	"github.com/c360/ephyscore/metadata"
	"github.com/c360/ephyscore/metric"
)

// Codec pairs the free Serialize/Deserialize functions with optional
// instrumentation. A zero-value Codec (nil Metrics) behaves exactly
// like calling the package functions directly; a pipeline stage that
// wants per-kind encode/decode/rejection counters constructs one with
// a *metric.Metrics from its metric.Registry instead.
type Codec struct {
	Metrics *metric.Metrics
}

// Serialize encodes e and records the outcome against c.Metrics.
func (c *Codec) Serialize(e any) ([]byte, error) {
	msg, err := Serialize(e)
	if err != nil {
		c.Metrics.RecordMalformed(rejectReason(err))
		return nil, err
	}
	c.Metrics.RecordEncoded(eventKind(e))
	return msg, nil
}

// Deserialize decodes msg and records the outcome against c.Metrics.
func (c *Codec) Deserialize(msg []byte, lookup ChannelLookup) (any, error) {
	ev, err := Deserialize(msg, lookup)
	if err != nil {
		c.Metrics.RecordMalformed(rejectReason(err))
		return nil, err
	}
	c.Metrics.RecordDecoded(eventKind(ev))
	return ev, nil
}

// NewSpikeEvent consumes buf via event.NewSpikeEvent, recording a
// SpikeBuffer reuse attempt against c.Metrics when buf has already
// been handed off once before.
func (c *Codec) NewSpikeEvent(desc *channel.SpikeChannel, timestamp uint64, thresholds []float32, buf *event.SpikeBuffer, meta metadata.Values) (*event.SpikeEvent, error) {
	ev, err := event.NewSpikeEvent(desc, timestamp, thresholds, buf, meta)
	if err != nil {
		if errors.Is(err, stderrors.ErrBufferNotReady) {
			c.Metrics.RecordSpikeBufferReuse()
		}
		return nil, err
	}
	return ev, nil
}

// eventKind returns the low-cardinality label Metrics.EventsEncoded/
// EventsDecoded group by.
func eventKind(e any) string {
	switch e.(type) {
	case *event.TTLEvent:
		return "ttl"
	case *event.TextEvent:
		return "text"
	case *event.SpikeEvent:
		return "spike"
	case *event.BinaryEvent[int8], *event.BinaryEvent[uint8],
		*event.BinaryEvent[int16], *event.BinaryEvent[uint16],
		*event.BinaryEvent[int32], *event.BinaryEvent[uint32],
		*event.BinaryEvent[int64], *event.BinaryEvent[uint64],
		*event.BinaryEvent[float32], *event.BinaryEvent[float64]:
		return "binary"
	default:
		return "unknown"
	}
}

// rejectReason maps a codec error back to the short sentinel-derived
// string MalformedRejections labels by.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, stderrors.ErrDescriptorMissing):
		return "descriptor_missing"
	case errors.Is(err, stderrors.ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, stderrors.ErrChannelOutOfRange):
		return "channel_out_of_range"
	case errors.Is(err, stderrors.ErrPayloadTooSmall):
		return "payload_too_small"
	case errors.Is(err, stderrors.ErrMetadataShapeMismatch):
		return "metadata_shape_mismatch"
	case errors.Is(err, stderrors.ErrMetadataPresent):
		return "metadata_present"
	case errors.Is(err, stderrors.ErrBufferShapeMismatch):
		return "buffer_shape_mismatch"
	case errors.Is(err, stderrors.ErrMalformedMessage):
		return "malformed_message"
	default:
		return "other"
	}
}
