package channel

import "github.com/c360/ephyscore/metadata"

// ElectrodeType is the closed set of multi-electrode spike geometries.
type ElectrodeType int

const (
	Single ElectrodeType = iota
	Stereotrode
	Tetrode
)

// electrodeChannelCount returns the number of data-channel lanes an
// electrode of type t bundles.
func electrodeChannelCount(t ElectrodeType) uint32 {
	switch t {
	case Single:
		return 1
	case Stereotrode:
		return 2
	case Tetrode:
		return 4
	default:
		return 0
	}
}

// SpikeChannel describes a multi-electrode spike-detection channel.
type SpikeChannel struct {
	Provenance
	Naming

	channelType    ElectrodeType
	sourceInfo     []SourceChannelInfo
	gain           float32
	numPreSamples  uint32
	numPostSamples uint32

	MetadataFields      []metadata.FieldDescriptor
	EventMetadataFields []metadata.FieldDescriptor
}

// NewSpikeChannel constructs a SpikeChannel with gain 1.0, 8 pre-peak
// samples, and 32 post-peak samples, recording one SourceChannelInfo
// per electrode lane.
func NewSpikeChannel(channelType ElectrodeType, provenance Provenance, sourceInfo []SourceChannelInfo) *SpikeChannel {
	return &SpikeChannel{
		Provenance:     provenance,
		channelType:    channelType,
		sourceInfo:     sourceInfo,
		gain:           1.0,
		numPreSamples:  8,
		numPostSamples: 32,
	}
}

// ChannelType returns the SINGLE/STEREOTRODE/TETRODE variant.
func (sc *SpikeChannel) ChannelType() ElectrodeType { return sc.channelType }

// SourceChannelInfo returns the originating data channel identified
// for each electrode lane, in lane order.
func (sc *SpikeChannel) SourceChannelInfo() []SourceChannelInfo {
	return sc.sourceInfo
}

// Gain returns the electrode gain.
func (sc *SpikeChannel) Gain() float32 { return sc.gain }

// SetGain sets the electrode gain.
func (sc *SpikeChannel) SetGain(gain float32) { sc.gain = gain }

// SetNumSamples sets the pre- and post-peak sample counts.
func (sc *SpikeChannel) SetNumSamples(pre, post uint32) {
	sc.numPreSamples = pre
	sc.numPostSamples = post
}

// NumPreSamples returns the number of samples captured before the peak.
func (sc *SpikeChannel) NumPreSamples() uint32 { return sc.numPreSamples }

// NumPostSamples returns the number of samples captured after the peak.
func (sc *SpikeChannel) NumPostSamples() uint32 { return sc.numPostSamples }

// TotalSamples returns NumPreSamples + NumPostSamples.
func (sc *SpikeChannel) TotalSamples() uint32 {
	return sc.numPreSamples + sc.numPostSamples
}

// NumChannels returns the number of electrode lanes bundled by this
// channel's ElectrodeType (1/2/4 for SINGLE/STEREOTRODE/TETRODE).
func (sc *SpikeChannel) NumChannels() uint32 {
	return electrodeChannelCount(sc.channelType)
}

// DataSize returns the total spike-waveform payload size in bytes:
// numChannels * totalSamples * sizeof(float32).
func (sc *SpikeChannel) DataSize() uint32 {
	return sc.NumChannels() * sc.TotalSamples() * 4
}

// ChannelDataSize returns the per-lane waveform payload size in bytes.
func (sc *SpikeChannel) ChannelDataSize() uint32 {
	return sc.TotalSamples() * 4
}

// TotalEventMetadataSize returns the byte footprint of a Values vector
// matching EventMetadataFields.
func (sc *SpikeChannel) TotalEventMetadataSize() int {
	return metadata.TotalSize(sc.EventMetadataFields)
}
