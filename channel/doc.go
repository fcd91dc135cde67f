// Package channel implements the descriptor model every processor
// publishes to describe what it emits: DataChannel, EventChannel,
// SpikeChannel, and ConfigurationObject.
//
// Descriptors are conceptually immutable after publication. The
// node info, source-processor info, named info, metadata container,
// and history a descriptor carries are expressed as embedded
// sub-records — Provenance, Naming, History — rather than as a
// runtime-dispatched type hierarchy; the four descriptor kinds are
// concrete structs, not implementations of a shared interface, since
// nothing downstream needs to treat them polymorphically.
//
// The only field that mutates after construction is nodeID, and only
// through Publisher, which models the pipeline machinery that owns
// that field exclusively. Application code never calls setNodeID
// directly.
package channel
