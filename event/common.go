package event

import (
	"github.com/c360/ephyscore/channel"
	"github.com/c360/ephyscore/errors"
	"github.com/c360/ephyscore/metadata"
)

// checkEventChannel runs the descriptor/channel-index checks shared by
// every processor-event factory: descriptor present, variant matches
// wantType, and channelIdx within [0, numChannels).
func checkEventChannel(desc *channel.EventChannel, wantType channel.EventChannelType, channelIdx uint16) error {
	if desc == nil {
		return errors.WrapInvalid(errors.ErrDescriptorMissing, "event", "checkEventChannel", "descriptor is nil")
	}
	if desc.ChannelType() != wantType {
		return errors.WrapInvalid(errors.ErrTypeMismatch, "event", "checkEventChannel", "descriptor variant does not match factory")
	}
	if uint32(channelIdx) >= desc.NumChannels() {
		return errors.WrapInvalid(errors.ErrChannelOutOfRange, "event", "checkEventChannel", "virtual channel index out of range")
	}
	return nil
}

// checkMetadataShape enforces that supplied values, if any, exactly
// match a descriptor's declared metadata fields: a descriptor with
// zero fields rejects any non-empty values vector, and a descriptor
// with fields rejects an empty one.
func checkMetadataShape(fields []metadata.FieldDescriptor, values metadata.Values) error {
	if len(fields) == 0 {
		if len(values) != 0 {
			return errors.WrapInvalid(errors.ErrMetadataShapeMismatch, "event", "checkMetadataShape", "descriptor declares no event-metadata fields")
		}
		return nil
	}
	if len(values) == 0 {
		return errors.WrapInvalid(errors.ErrMetadataPresent, "event", "checkMetadataShape", "descriptor declares event-metadata fields but none were supplied")
	}
	if !metadata.CompareMetaData(fields, values) {
		return errors.WrapInvalid(errors.ErrMetadataShapeMismatch, "event", "checkMetadataShape", "supplied metadata does not match descriptor fields")
	}
	return nil
}
