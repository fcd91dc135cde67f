package channel

import "github.com/c360/ephyscore/metadata"

// ConfigurationObject carries metadata fields shared with downstream
// processors without being associated with any particular channel or
// event. It holds no data and no sample rate.
type ConfigurationObject struct {
	Provenance
	Naming

	shouldBeRecorded bool

	MetadataFields []metadata.FieldDescriptor
}

// NewConfigurationObject constructs a ConfigurationObject. descriptor
// is required: a configuration object with no descriptor string
// cannot be matched back up to the plugin value tree it describes.
func NewConfigurationObject(descriptor string, provenance Provenance) *ConfigurationObject {
	return &ConfigurationObject{
		Provenance:       provenance,
		Naming:           Naming{Descriptor: descriptor},
		shouldBeRecorded: true,
	}
}

// ShouldBeRecorded returns the source processor's recording preference hint.
func (c *ConfigurationObject) ShouldBeRecorded() bool { return c.shouldBeRecorded }

// SetShouldBeRecorded sets the source processor's recording preference hint.
func (c *ConfigurationObject) SetShouldBeRecorded(v bool) { c.shouldBeRecorded = v }
