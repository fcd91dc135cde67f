package event

import (
	"github.com/c360/ephyscore/channel"
	"github.com/c360/ephyscore/errors"
	"github.com/c360/ephyscore/metadata"
)

// TextEvent carries a UTF-8 string bound to a TEXT EventChannel.
type TextEvent struct {
	Descriptor *channel.EventChannel
	Timestamp  uint64
	Channel    uint16
	Text       string
	Metadata   metadata.Values
}

// NewTextEvent validates channelIdx against desc and rejects text
// whose UTF-8 byte length exceeds desc.Length().
func NewTextEvent(desc *channel.EventChannel, timestamp uint64, channelIdx uint16, text string, meta metadata.Values) (*TextEvent, error) {
	if err := checkEventChannel(desc, channel.Text, channelIdx); err != nil {
		return nil, err
	}
	if err := checkMetadataShape(desc.EventMetadataFields, meta); err != nil {
		return nil, err
	}
	if len(text) > int(desc.Length()) {
		return nil, errors.WrapInvalid(errors.ErrTextTooLong, "TextEvent", "New", "text exceeds descriptor length")
	}

	return &TextEvent{
		Descriptor: desc,
		Timestamp:  timestamp,
		Channel:    channelIdx,
		Text:       text,
		Metadata:   meta,
	}, nil
}

// Payload returns text zero-padded to desc.DataSize() bytes, the
// exact on-wire representation of a TEXT channel's payload.
func (t *TextEvent) Payload() []byte {
	size := int(t.Descriptor.DataSize())
	buf := make([]byte, size)
	copy(buf, t.Text)
	return buf
}
