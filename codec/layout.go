package codec

// Base event tags occupying byte 0 of every serialized message.
const (
	ProcessorEventTag uint8 = 1
	SpikeEventTag     uint8 = 2
)

// EventBaseSize is the fixed header size of the processor-event layout
// (TTL/TEXT/BINARY): 8 bytes of tag/type/provenance fields, 8 bytes of
// timestamp, 2 bytes of virtual-channel index, and 6 bytes of padding
// reserved for future additive metadata.
const EventBaseSize = 24

// SpikeBaseSize is the fixed header size of the spike-event layout: the
// same 16-byte tag/type/provenance/timestamp prefix, padded out to 24
// bytes. Unlike the processor-event layout it carries no per-event
// virtual-channel field - a spike event addresses every electrode lane
// at once via its thresholds/samples arrays.
const SpikeBaseSize = 24

// Processor-event layout offsets.
const (
	offBaseTag        = 0
	offEventType      = 1
	offSourceID       = 2
	offSubProcessorID = 4
	offSourceIndex    = 6
	offTimestamp      = 8
	offVirtualChannel = 16
	// offsets 18..23 are reserved padding, preserved but not interpreted.
)

// The spike-event layout shares the same offBaseTag/offEventType/
// offSourceID/offSubProcessorID/offSourceIndex/offTimestamp prefix
// (bytes 0..15) as the processor-event layout; offEventType there
// holds the electrode type instead of the EventChannelType tag.
// Offsets 16..23 are padding, and the threshold/sample arrays begin
// at SpikeBaseSize.
