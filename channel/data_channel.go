package channel

// DataChannelType distinguishes the three kinds of continuous-sample
// channel a processor can publish.
type DataChannelType int

const (
	HeadstageChannel DataChannelType = iota
	AuxChannel
	ADCChannel
)

// DataChannel describes a continuous-sample channel.
type DataChannel struct {
	Provenance
	Naming
	History

	channelType DataChannelType
	bitVolts    float32
	enabled     bool
	monitored   bool
	recording   bool
}

// NewDataChannel constructs a DataChannel with its default scaling:
// bitVolts 1.0, enabled true, monitored/recording false.
func NewDataChannel(channelType DataChannelType, provenance Provenance) *DataChannel {
	return &DataChannel{
		Provenance:  provenance,
		channelType: channelType,
		bitVolts:    1.0,
		enabled:     true,
	}
}

// ChannelType returns the channel's HEADSTAGE/AUX/ADC variant.
func (d *DataChannel) ChannelType() DataChannelType { return d.channelType }

// BitVolts returns the scale factor applied to raw samples.
func (d *DataChannel) BitVolts() float32 { return d.bitVolts }

// SetBitVolts sets the scale factor applied to raw samples.
func (d *DataChannel) SetBitVolts(v float32) { d.bitVolts = v }

// IsEnabled reports whether the channel is routed for further processing.
func (d *DataChannel) IsEnabled() bool { return d.enabled }

// SetEnabled toggles whether the channel is routed for further processing.
func (d *DataChannel) SetEnabled(e bool) { d.enabled = e }

// IsMonitored reports whether the channel is routed to the audio monitor.
func (d *DataChannel) IsMonitored() bool { return d.monitored }

// SetMonitored toggles whether the channel is routed to the audio monitor.
func (d *DataChannel) SetMonitored(m bool) { d.monitored = m }

// IsRecording reports whether the channel is marked for recording.
func (d *DataChannel) IsRecording() bool { return d.recording }

// SetRecording toggles whether the channel is marked for recording.
func (d *DataChannel) SetRecording(r bool) { d.recording = r }

// Reset restores bitVolts/enabled/monitored/recording to their
// construction-time defaults, leaving provenance, naming, and history
// untouched.
func (d *DataChannel) Reset() {
	d.bitVolts = 1.0
	d.enabled = true
	d.monitored = false
	d.recording = false
}
