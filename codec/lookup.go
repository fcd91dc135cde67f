package codec

import "github.com/c360/ephyscore/channel"

// ChannelLookup is the only API Deserialize calls against a processor's
// descriptor table: given the (processorID, subProcessorID, channelIDX)
// triple carried at offsets 2/4/6 of a message, resolve the binding
// descriptor. channelIDX here is the descriptor's SourceIndex - its
// position among every channel of its kind the source processor
// emits, i.e. the source-local index across objects of that kind.
type ChannelLookup interface {
	EventChannel(processorID, subProcessorID, channelIDX uint16) (*channel.EventChannel, bool)
	SpikeChannel(processorID, subProcessorID, channelIDX uint16) (*channel.SpikeChannel, bool)
}
