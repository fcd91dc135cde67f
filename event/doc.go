// Package event implements the concrete events bound to a channel
// descriptor: TTLEvent, TextEvent, BinaryEvent[T], and SpikeEvent,
// plus the SpikeBuffer used to assemble a spike waveform without
// copying it.
//
// Every event is produced by a validating factory function
// (NewTTLEvent, NewTextEvent, NewBinaryEvent[T], NewSpikeEvent) that
// returns a constructed value directly rather than through an
// out-parameter, reporting a failed validation check as an error
// classified through the errors package instead of a partially built
// event. There is no shared Event interface: callers always know
// which concrete kind they are building or have just decoded, so a
// tagged-union dispatch would only add an unused layer of indirection.
//
// Like a channel descriptor, an event is owned exclusively by the
// stage currently holding it and is not meant to be shared across
// goroutines without external synchronization.
package event
