package channel

import "strings"

// SourceChannelInfo identifies a single originating data channel by
// its (processorID, subProcessorID, channelIDX) triple. A SpikeChannel
// carries one per electrode lane.
type SourceChannelInfo struct {
	ProcessorID    uint16
	SubProcessorID uint16
	ChannelIDX     uint16
}

// Provenance records where a descriptor came from: the processor and
// sub-processor that created it, and its position among channels of
// its kind. NodeID additionally tracks which processor currently owns
// the descriptor as it propagates downstream; it is the only field
// here that mutates after construction, and only via setNodeID.
type Provenance struct {
	SourceNodeID    uint16
	SubProcessorIdx uint16
	SourceType      string
	SourceName      string
	SourceIndex     uint16
	SourceTypeIndex uint16
	SampleRate      float64

	nodeID uint16
}

// NewProvenance captures provenance at descriptor-construction time.
// nodeID starts equal to sourceNodeID: a freshly created descriptor is
// still owned by the processor that created it.
func NewProvenance(sourceNodeID, subProcessorIdx uint16, sourceType, sourceName string, sourceIndex, sourceTypeIndex uint16) Provenance {
	return Provenance{
		SourceNodeID:    sourceNodeID,
		SubProcessorIdx: subProcessorIdx,
		SourceType:      sourceType,
		SourceName:      sourceName,
		SourceIndex:     sourceIndex,
		SourceTypeIndex: sourceTypeIndex,
		SampleRate:      44100.0,
		nodeID:          sourceNodeID,
	}
}

// NodeID returns the processor currently owning this descriptor copy.
func (p *Provenance) NodeID() uint16 {
	return p.nodeID
}

// setNodeID rewrites the owning processor. Unexported: only Publisher
// may call it - the owning node ID is never changed by anything but
// the publication path that assigns a channel to its processor.
func (p *Provenance) setNodeID(id uint16) {
	p.nodeID = id
}

// Naming holds the human- and machine-readable identity of a
// descriptor: a display name, a dotted machine-readable descriptor
// string (e.g. "data.continuous.headstage"), and a free-text
// description.
type Naming struct {
	Name        string
	Descriptor  string
	Description string
}

// History is an append-only audit trail of the processing stages a
// descriptor has passed through, joined by newlines.
type History struct {
	entries []string
}

// AddToHistory appends entry to the historic record.
func (h *History) AddToHistory(entry string) {
	h.entries = append(h.entries, entry)
}

// GetHistory returns every entry joined by a single newline.
func (h *History) GetHistory() string {
	return strings.Join(h.entries, "\n")
}

// Publisher mutates the one field a descriptor may change after
// construction: nodeID, as the descriptor is carried from stage to
// stage. It exists so that ordinary application code, which only ever
// holds a descriptor value or pointer, has no way to call setNodeID -
// only code holding a Publisher can.
type Publisher struct{}

// nodeOwner is implemented by every descriptor kind via its embedded Provenance.
type nodeOwner interface {
	setNodeID(uint16)
}

// Republish updates d's nodeID to the processor that now owns it.
func (Publisher) Republish(d nodeOwner, newNodeID uint16) {
	d.setNodeID(newNodeID)
}
