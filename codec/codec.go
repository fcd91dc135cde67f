package codec

import (
	"github.com/c360/ephyscore/channel"
	"github.com/c360/ephyscore/errors"
	"github.com/c360/ephyscore/event"
	"github.com/c360/ephyscore/metadata"
)

func putHeader(c *cursor, baseTag, eventType uint8, sourceID, subProcessorID, sourceIndex uint16, timestamp uint64) {
	c.putUint8(offBaseTag, baseTag)
	c.putUint8(offEventType, eventType)
	c.putUint16(offSourceID, sourceID)
	c.putUint16(offSubProcessorID, subProcessorID)
	c.putUint16(offSourceIndex, sourceIndex)
	c.putUint64(offTimestamp, timestamp)
}

// Serialize encodes e into a new byte message using the processor-
// event or spike-event layout, depending on e's concrete type. e must
// be one of *event.TTLEvent, *event.TextEvent, *event.BinaryEvent[T]
// for one of the ten element types, or *event.SpikeEvent.
func Serialize(e any) ([]byte, error) {
	switch ev := e.(type) {
	case *event.TTLEvent:
		return encodeProcessorEvent(uint8(channel.TTL), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Word, ev.Metadata)
	case *event.TextEvent:
		return encodeProcessorEvent(uint8(channel.Text), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload(), ev.Metadata)
	case *event.BinaryEvent[int8]:
		return encodeProcessorEvent(uint8(channel.Int8Array), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.BinaryEvent[uint8]:
		return encodeProcessorEvent(uint8(channel.Uint8Array), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.BinaryEvent[int16]:
		return encodeProcessorEvent(uint8(channel.Int16Array), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.BinaryEvent[uint16]:
		return encodeProcessorEvent(uint8(channel.Uint16Array), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.BinaryEvent[int32]:
		return encodeProcessorEvent(uint8(channel.Int32Array), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.BinaryEvent[uint32]:
		return encodeProcessorEvent(uint8(channel.Uint32Array), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.BinaryEvent[int64]:
		return encodeProcessorEvent(uint8(channel.Int64Array), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.BinaryEvent[uint64]:
		return encodeProcessorEvent(uint8(channel.Uint64Array), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.BinaryEvent[float32]:
		return encodeProcessorEvent(uint8(channel.FloatArray), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.BinaryEvent[float64]:
		return encodeProcessorEvent(uint8(channel.DoubleArray), ev.Descriptor, ev.Timestamp, ev.Channel, ev.Payload, ev.Metadata)
	case *event.SpikeEvent:
		return encodeSpikeEvent(ev)
	default:
		return nil, errors.WrapInvalid(errors.ErrTypeMismatch, "codec", "Serialize", "unsupported event type")
	}
}

func encodeProcessorEvent(eventType uint8, desc *channel.EventChannel, timestamp uint64, virtualChannel uint16, payload []byte, meta metadata.Values) ([]byte, error) {
	if desc == nil {
		return nil, errors.WrapInvalid(errors.ErrDescriptorMissing, "codec", "encodeProcessorEvent", "descriptor is nil")
	}
	dataSize := int(desc.DataSize())
	if len(payload) < dataSize {
		return nil, errors.WrapInvalid(errors.ErrPayloadTooSmall, "codec", "encodeProcessorEvent", "payload shorter than descriptor data size")
	}
	metaBytes := meta.Encode()
	metaSize := desc.TotalEventMetadataSize()
	if len(metaBytes) != metaSize {
		return nil, errors.WrapInvalid(errors.ErrMetadataShapeMismatch, "codec", "encodeProcessorEvent", "metadata does not match descriptor event-metadata fields")
	}

	total := EventBaseSize + dataSize + metaSize
	c := newCursor(make([]byte, total))
	putHeader(c, ProcessorEventTag, eventType, desc.SourceNodeID, desc.SubProcessorIdx, desc.SourceIndex, timestamp)
	c.putUint16(offVirtualChannel, virtualChannel)
	c.putBytes(EventBaseSize, payload[:dataSize])
	c.putBytes(EventBaseSize+dataSize, metaBytes)
	return c.bytes(), nil
}

func encodeSpikeEvent(ev *event.SpikeEvent) ([]byte, error) {
	desc := ev.Descriptor
	if desc == nil {
		return nil, errors.WrapInvalid(errors.ErrDescriptorMissing, "codec", "encodeSpikeEvent", "descriptor is nil")
	}
	numChannels := int(desc.NumChannels())
	if len(ev.Thresholds) != numChannels {
		return nil, errors.WrapInvalid(errors.ErrBufferShapeMismatch, "codec", "encodeSpikeEvent", "threshold count does not match descriptor channel count")
	}
	dataSize := int(desc.DataSize())
	if len(ev.Samples)*4 < dataSize {
		return nil, errors.WrapInvalid(errors.ErrPayloadTooSmall, "codec", "encodeSpikeEvent", "sample count shorter than descriptor data size")
	}
	metaBytes := ev.Metadata.Encode()
	metaSize := desc.TotalEventMetadataSize()
	if len(metaBytes) != metaSize {
		return nil, errors.WrapInvalid(errors.ErrMetadataShapeMismatch, "codec", "encodeSpikeEvent", "metadata does not match descriptor event-metadata fields")
	}

	thresholdsSize := numChannels * 4
	total := SpikeBaseSize + thresholdsSize + dataSize + metaSize
	c := newCursor(make([]byte, total))
	putHeader(c, SpikeEventTag, uint8(desc.ChannelType()), desc.SourceNodeID, desc.SubProcessorIdx, desc.SourceIndex, ev.Timestamp)

	for i, threshold := range ev.Thresholds {
		c.putFloat32(SpikeBaseSize+i*4, threshold)
	}
	sampleOffset := SpikeBaseSize + thresholdsSize
	numSamples := dataSize / 4
	for i := 0; i < numSamples; i++ {
		c.putFloat32(sampleOffset+i*4, ev.Samples[i])
	}
	c.putBytes(sampleOffset+dataSize, metaBytes)
	return c.bytes(), nil
}

// Deserialize reads byte 0 and the provenance fields at offsets 2/4/6
// to resolve the binding descriptor via lookup, then dispatches on the
// descriptor's variant to a per-kind decoder. The returned value is
// one of *event.TTLEvent, *event.TextEvent, *event.BinaryEvent[T], or
// *event.SpikeEvent. A failed length, base-tag, or event-type check
// returns errors.ErrMalformedMessage; an unresolved provenance triple
// returns errors.ErrDescriptorMissing; decoded fields the event factory
// rejects return that factory's error. Every failure yields a nil event.
func Deserialize(msg []byte, lookup ChannelLookup) (any, error) {
	if len(msg) < EventBaseSize {
		return nil, errors.WrapInvalid(errors.ErrMalformedMessage, "codec", "Deserialize", "message shorter than header")
	}
	c := newCursor(msg)

	baseTag := c.uint8At(offBaseTag)
	eventType := c.uint8At(offEventType)
	sourceID := c.uint16At(offSourceID)
	subProcessorID := c.uint16At(offSubProcessorID)
	sourceIndex := c.uint16At(offSourceIndex)
	timestamp := c.uint64At(offTimestamp)

	switch baseTag {
	case ProcessorEventTag:
		desc, ok := lookup.EventChannel(sourceID, subProcessorID, sourceIndex)
		if !ok || desc == nil {
			return nil, errors.WrapInvalid(errors.ErrDescriptorMissing, "codec", "Deserialize", "no event channel for provenance triple")
		}
		if eventType != uint8(desc.ChannelType()) {
			return nil, errors.WrapInvalid(errors.ErrMalformedMessage, "codec", "Deserialize", "event type does not match descriptor variant")
		}
		return decodeProcessorEvent(c, desc, timestamp)
	case SpikeEventTag:
		desc, ok := lookup.SpikeChannel(sourceID, subProcessorID, sourceIndex)
		if !ok || desc == nil {
			return nil, errors.WrapInvalid(errors.ErrDescriptorMissing, "codec", "Deserialize", "no spike channel for provenance triple")
		}
		if eventType != uint8(desc.ChannelType()) {
			return nil, errors.WrapInvalid(errors.ErrMalformedMessage, "codec", "Deserialize", "electrode type does not match descriptor variant")
		}
		return decodeSpikeEvent(c, desc, timestamp)
	default:
		return nil, errors.WrapInvalid(errors.ErrMalformedMessage, "codec", "Deserialize", "unrecognized base tag")
	}
}

func decodeProcessorEvent(c *cursor, desc *channel.EventChannel, timestamp uint64) (any, error) {
	dataSize := int(desc.DataSize())
	metaSize := desc.TotalEventMetadataSize()
	wantLen := EventBaseSize + dataSize + metaSize
	if len(c.bytes()) != wantLen {
		return nil, errors.WrapInvalid(errors.ErrMalformedMessage, "codec", "decodeProcessorEvent", "message length does not match descriptor-derived size")
	}

	virtualChannel := c.uint16At(offVirtualChannel)
	payload := c.bytesAt(EventBaseSize, dataSize)
	meta, err := decodeMeta(desc.EventMetadataFields, c.bytesAt(EventBaseSize+dataSize, metaSize))
	if err != nil {
		return nil, err
	}

	// Each branch assigns into a concrete local before returning so a
	// failed factory call yields a bare untyped nil interface value,
	// not an any wrapping a typed nil pointer.
	switch desc.ChannelType() {
	case channel.TTL:
		ev, err := event.NewTTLEvent(desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.Text:
		ev, err := event.NewTextEvent(desc, timestamp, virtualChannel, string(trimTrailingZeros(payload)), meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.Int8Array:
		ev, err := event.NewBinaryEvent[int8](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.Uint8Array:
		ev, err := event.NewBinaryEvent[uint8](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.Int16Array:
		ev, err := event.NewBinaryEvent[int16](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.Uint16Array:
		ev, err := event.NewBinaryEvent[uint16](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.Int32Array:
		ev, err := event.NewBinaryEvent[int32](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.Uint32Array:
		ev, err := event.NewBinaryEvent[uint32](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.Int64Array:
		ev, err := event.NewBinaryEvent[int64](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.Uint64Array:
		ev, err := event.NewBinaryEvent[uint64](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.FloatArray:
		ev, err := event.NewBinaryEvent[float32](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case channel.DoubleArray:
		ev, err := event.NewBinaryEvent[float64](desc, timestamp, virtualChannel, payload, meta)
		if err != nil {
			return nil, err
		}
		return ev, nil
	default:
		return nil, errors.WrapInvalid(errors.ErrMalformedMessage, "codec", "decodeProcessorEvent", "descriptor variant has no decoder")
	}
}

func decodeSpikeEvent(c *cursor, desc *channel.SpikeChannel, timestamp uint64) (any, error) {
	numChannels := int(desc.NumChannels())
	dataSize := int(desc.DataSize())
	metaSize := desc.TotalEventMetadataSize()
	thresholdsSize := numChannels * 4
	wantLen := SpikeBaseSize + thresholdsSize + dataSize + metaSize
	if len(c.bytes()) != wantLen {
		return nil, errors.WrapInvalid(errors.ErrMalformedMessage, "codec", "decodeSpikeEvent", "message length does not match descriptor-derived size")
	}

	thresholds := make([]float32, numChannels)
	for i := range thresholds {
		thresholds[i] = c.float32At(SpikeBaseSize + i*4)
	}

	sampleOffset := SpikeBaseSize + thresholdsSize
	buf := event.NewSpikeBuffer(desc)
	for lane := 0; lane < numChannels; lane++ {
		view, err := buf.Lane(uint32(lane))
		if err != nil {
			return nil, err
		}
		for s := range view {
			view[s] = c.float32At(sampleOffset + (lane*int(desc.TotalSamples())+s)*4)
		}
	}

	meta, err := decodeMeta(desc.EventMetadataFields, c.bytesAt(sampleOffset+dataSize, metaSize))
	if err != nil {
		return nil, err
	}

	ev, err := event.NewSpikeEvent(desc, timestamp, thresholds, buf, meta)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func decodeMeta(fields []metadata.FieldDescriptor, buf []byte) (metadata.Values, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	return metadata.DecodeValues(fields, buf)
}

func trimTrailingZeros(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return b[:end]
}
