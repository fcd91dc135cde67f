// Package ephyscore provides the channel-descriptor, event-object, and
// binary serialization core shared by every stage of a neurophysiology
// data-acquisition pipeline.
//
// # Scope
//
// ephyscore covers three things:
//
//   - channel: immutable-after-publish descriptors of what a processing
//     stage emits (DataChannel, EventChannel, SpikeChannel, ConfigurationObject).
//   - event: the concrete events bound to those descriptors (TTLEvent,
//     TextEvent, BinaryEvent[T], SpikeEvent) plus the SpikeBuffer handoff
//     used to assemble spike waveforms without copying them.
//   - codec: bit-exact encode/decode of events to and from a contiguous
//     byte message, using native byte order.
//
// It intentionally says nothing about how stages are scheduled, how
// continuous samples are buffered, how events are transported between
// stages, or how they are ultimately recorded to disk. Those concerns
// belong to the surrounding acquisition framework, not this module; the
// wire layout in the codec package is the only contract between them.
//
// # Model
//
// A channel is located by the triple (processorID, subProcessorID,
// channelIDX). A processor constructs descriptors at initialization and
// publishes them; during streaming it builds events through
// descriptor-validated factory functions, serializes them with codec,
// and hands the resulting bytes to whatever carries them downstream.
// The receiving stage looks up the binding descriptor for (id, sub,
// index) and decodes against it.
//
// Everything here is synchronous: there are no suspension points, no
// retries, and no background goroutines. A malformed decode or a failed
// factory call yields a zero value and an error; the caller decides
// whether that is a bug to assert on or an event to drop.
package ephyscore
