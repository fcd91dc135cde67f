package event

import (
	"github.com/c360/ephyscore/channel"
	"github.com/c360/ephyscore/errors"
	"github.com/c360/ephyscore/metadata"
)

// TTLEvent carries a bit-packed digital word bound to a TTL EventChannel.
type TTLEvent struct {
	Descriptor *channel.EventChannel
	Timestamp  uint64
	Channel    uint16
	Word       []byte
	Metadata   metadata.Values
}

// NewTTLEvent validates channel against desc and, on success, copies
// exactly desc.DataSize() bytes out of word.
func NewTTLEvent(desc *channel.EventChannel, timestamp uint64, channelIdx uint16, word []byte, meta metadata.Values) (*TTLEvent, error) {
	if err := checkEventChannel(desc, channel.TTL, channelIdx); err != nil {
		return nil, err
	}
	if err := checkMetadataShape(desc.EventMetadataFields, meta); err != nil {
		return nil, err
	}

	dataSize := int(desc.DataSize())
	if len(word) < dataSize {
		return nil, errors.WrapInvalid(errors.ErrPayloadTooSmall, "TTLEvent", "New", "word shorter than descriptor data size")
	}

	return &TTLEvent{
		Descriptor: desc,
		Timestamp:  timestamp,
		Channel:    channelIdx,
		Word:       append([]byte(nil), word[:dataSize]...),
		Metadata:   meta,
	}, nil
}

// GetState returns the bit at virtual-channel lane c of the TTL word.
func (t *TTLEvent) GetState(c uint16) (bool, error) {
	if t.Descriptor != nil && c >= uint16(t.Descriptor.NumChannels()) {
		return false, errors.WrapInvalid(errors.ErrChannelOutOfRange, "TTLEvent", "GetState", "channel index out of range")
	}
	byteIndex := c / 8
	bitIndex := c % 8
	if int(byteIndex) >= len(t.Word) {
		return false, errors.WrapInvalid(errors.ErrMalformedMessage, "TTLEvent", "GetState", "word too short for channel index")
	}
	return (t.Word[byteIndex]>>bitIndex)&1 == 1, nil
}
