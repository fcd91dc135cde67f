// Package metadata implements the typed scalar/array value model shared
// by channel descriptors and events: a closed set of primitive types,
// fixed-length arrays, and the field-descriptor/value pairing used to
// validate and serialize them.
//
// A Value is "of the type of" a FieldDescriptor when their (Type,
// Length) pair matches; CompareMetaData checks an entire ordered slice
// of values against an ordered slice of descriptors in one pass.
// Serialization is raw concatenation in slot order — the descriptor
// list fixes the shape, so no framing is written.
package metadata
