package event

import (
	"github.com/c360/ephyscore/channel"
	"github.com/c360/ephyscore/errors"
	"github.com/c360/ephyscore/metadata"
)

// BinaryElement is the closed set of element types a BinaryEvent may
// carry, one per EventChannelType in the binary-array range.
type BinaryElement interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// elementTypeOf maps a Go element type parameter to the EventChannelType
// tag that must appear in the binding descriptor. The descriptor's
// element type tag is authoritative regardless of what the caller's
// type parameter says; this table is how the factory checks the two
// agree.
func elementTypeOf[T BinaryElement]() channel.EventChannelType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return channel.Int8Array
	case uint8:
		return channel.Uint8Array
	case int16:
		return channel.Int16Array
	case uint16:
		return channel.Uint16Array
	case int32:
		return channel.Int32Array
	case uint32:
		return channel.Uint32Array
	case int64:
		return channel.Int64Array
	case uint64:
		return channel.Uint64Array
	case float32:
		return channel.FloatArray
	case float64:
		return channel.DoubleArray
	default:
		return channel.Invalid
	}
}

// BinaryEvent carries a fixed-length array of T bound to a binary-array
// EventChannel. The descriptor's variant, not T alone, is authoritative
// for which element type the payload holds.
type BinaryEvent[T BinaryElement] struct {
	Descriptor *channel.EventChannel
	Timestamp  uint64
	Channel    uint16
	Payload    []byte
	Metadata   metadata.Values
}

// NewBinaryEvent validates that T's corresponding EventChannelType
// matches desc.ChannelType(), that channelIdx is in range, and that
// data holds at least desc.DataSize() raw bytes; it copies exactly
// that many bytes into the event.
func NewBinaryEvent[T BinaryElement](desc *channel.EventChannel, timestamp uint64, channelIdx uint16, data []byte, meta metadata.Values) (*BinaryEvent[T], error) {
	wantType := elementTypeOf[T]()
	if err := checkEventChannel(desc, wantType, channelIdx); err != nil {
		return nil, err
	}
	if err := checkMetadataShape(desc.EventMetadataFields, meta); err != nil {
		return nil, err
	}

	dataSize := int(desc.DataSize())
	if len(data) < dataSize {
		return nil, errors.WrapInvalid(errors.ErrPayloadTooSmall, "BinaryEvent", "New", "data shorter than descriptor data size")
	}

	return &BinaryEvent[T]{
		Descriptor: desc,
		Timestamp:  timestamp,
		Channel:    channelIdx,
		Payload:    append([]byte(nil), data[:dataSize]...),
		Metadata:   meta,
	}, nil
}
