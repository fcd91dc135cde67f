// Package codec implements the bit-exact binary serialization and
// deserialization of processor events: a fixed-offset processor-event
// layout shared by TTLEvent/TextEvent/BinaryEvent[T], and a separate
// fixed-offset layout for SpikeEvent.
//
// Encoding and decoding go through a small typed cursor (cursor.go)
// that reads and writes fixed-width fields at fixed byte offsets in
// native (little-endian) order rather than raw pointer arithmetic.
// EventBaseSize and SpikeBaseSize are asserted against their layout
// tables in layout_test.go so the named constants cannot silently
// drift from the byte widths they claim to summarize.
//
// Serialize and Deserialize are the only entry points a processor or
// downstream stage needs; everything else in this package is
// implementation detail. Like the event package, nothing here is
// meant to be shared across goroutines without external
// synchronization - a serialize/deserialize call happens inline
// within a single process-block callback.
package codec
