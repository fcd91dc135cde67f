package channel

import "github.com/c360/ephyscore/metadata"

// EventChannelType is the closed set of discrete-event channel
// variants. Numeric values are kept stable for wire compatibility:
// TTL and TEXT carry their historical tag values, and the binary
// array types occupy the contiguous range [BinaryBaseValue, Invalid).
type EventChannelType int

const (
	TTL  EventChannelType = 3
	Text EventChannelType = 5

	Int8Array   EventChannelType = 10
	Uint8Array  EventChannelType = 11
	Int16Array  EventChannelType = 12
	Uint16Array EventChannelType = 13
	Int32Array  EventChannelType = 14
	Uint32Array EventChannelType = 15
	Int64Array  EventChannelType = 16
	Uint64Array EventChannelType = 17
	FloatArray  EventChannelType = 18
	DoubleArray EventChannelType = 19

	Invalid EventChannelType = 20
)

// BinaryBaseValue is the first tag in the contiguous binary-array
// range; Invalid bounds the range from above.
const BinaryBaseValue = Int8Array

// IsBinary reports whether t falls in the binary-array tag range.
func (t EventChannelType) IsBinary() bool {
	return t >= BinaryBaseValue && t < Invalid
}

// TypeByteSize returns sizeof(element) in bytes for the binary-array
// variant t, or 0 if t does not name an array element type.
func TypeByteSize(t EventChannelType) int {
	switch t {
	case Int8Array, Uint8Array:
		return 1
	case Int16Array, Uint16Array:
		return 2
	case Int32Array, Uint32Array, FloatArray:
		return 4
	case Int64Array, Uint64Array, DoubleArray:
		return 8
	default:
		return 0
	}
}

// EventChannel describes a discrete-event channel: TTL, TEXT, or one
// of the typed binary-array variants.
type EventChannel struct {
	Provenance
	Naming

	channelType EventChannelType
	numChannels uint32
	length      uint32
	dataSize    uint32

	shouldBeRecorded bool

	MetadataFields      []metadata.FieldDescriptor
	EventMetadataFields []metadata.FieldDescriptor
}

// NewEventChannel constructs an EventChannel with numChannels=1,
// length=1, shouldBeRecorded=true, and a dataSize recomputed from
// those defaults for channelType.
func NewEventChannel(channelType EventChannelType, provenance Provenance) *EventChannel {
	ec := &EventChannel{
		Provenance:       provenance,
		channelType:      channelType,
		numChannels:      1,
		length:           1,
		shouldBeRecorded: true,
	}
	ec.recomputeDataSize()
	return ec
}

// ChannelType returns the TTL/TEXT/binary-array variant.
func (ec *EventChannel) ChannelType() EventChannelType { return ec.channelType }

// NumChannels returns the number of virtual lanes (TTL word bit-width
// for TTL channels).
func (ec *EventChannel) NumChannels() uint32 { return ec.numChannels }

// SetNumChannels sets the number of virtual lanes and, for TTL
// channels, eagerly recomputes dataSize (ceil(numChannels/8)).
func (ec *EventChannel) SetNumChannels(n uint32) {
	ec.numChannels = n
	ec.recomputeDataSize()
}

// Length returns the payload length: max characters for TEXT, element
// count for binary arrays, ignored for TTL.
func (ec *EventChannel) Length() uint32 { return ec.length }

// SetLength sets the payload length and eagerly recomputes dataSize
// for TEXT and binary-array channels. It has no effect on TTL
// channels, whose size is derived solely from numChannels.
func (ec *EventChannel) SetLength(length uint32) {
	if ec.channelType == TTL {
		return
	}
	ec.length = length
	ec.recomputeDataSize()
}

// DataSize returns the payload size in bytes.
func (ec *EventChannel) DataSize() uint32 { return ec.dataSize }

func (ec *EventChannel) recomputeDataSize() {
	switch ec.channelType {
	case TTL:
		ec.dataSize = (ec.numChannels + 7) / 8
	case Text:
		ec.dataSize = ec.length
	default:
		ec.dataSize = ec.length * uint32(TypeByteSize(ec.channelType))
	}
}

// ShouldBeRecorded returns the source processor's recording preference hint.
func (ec *EventChannel) ShouldBeRecorded() bool { return ec.shouldBeRecorded }

// SetShouldBeRecorded sets the source processor's recording preference hint.
func (ec *EventChannel) SetShouldBeRecorded(v bool) { ec.shouldBeRecorded = v }

// TotalEventMetadataSize returns the byte footprint of a Values vector
// matching EventMetadataFields.
func (ec *EventChannel) TotalEventMetadataSize() int {
	return metadata.TotalSize(ec.EventMetadataFields)
}
