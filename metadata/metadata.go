package metadata

import (
	"bytes"

	"github.com/c360/ephyscore/errors"
)

// Type is the closed set of primitive element types a metadata Value
// or FieldDescriptor can carry.
type Type uint8

const (
	Char Type = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64

	invalidType
)

// String returns the canonical name of the type.
func (t Type) String() string {
	switch t {
	case Char:
		return "CHAR"
	case Int8:
		return "INT8"
	case Uint8:
		return "UINT8"
	case Int16:
		return "INT16"
	case Uint16:
		return "UINT16"
	case Int32:
		return "INT32"
	case Uint32:
		return "UINT32"
	case Int64:
		return "INT64"
	case Uint64:
		return "UINT64"
	case Float32:
		return "FLOAT"
	case Float64:
		return "DOUBLE"
	default:
		return "INVALID"
	}
}

// IsValid reports whether t is one of the defined primitive types.
func (t Type) IsValid() bool {
	return t < invalidType
}

// elementSize returns sizeof(element) in bytes for t, or 0 if t is invalid.
func elementSize(t Type) int {
	switch t {
	case Char, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// FieldDescriptor names a single metadata slot: its element type,
// fixed array length, and descriptive fields. Channel-metadata and
// event-metadata are both ordered lists of FieldDescriptor.
type FieldDescriptor struct {
	Type        Type
	Length      int
	Name        string
	Identifier  string
	Description string
}

// Size returns the byte size a Value conforming to d occupies on the wire.
func (d FieldDescriptor) Size() int {
	return elementSize(d.Type) * d.Length
}

// Value is a concrete metadata value: a typed, fixed-length array
// carried as raw bytes in the platform's native byte order.
type Value struct {
	Type   Type
	Length int
	Data   []byte
}

// Size returns sizeof(element) * Length, the byte footprint of v.
func (v Value) Size() int {
	return elementSize(v.Type) * v.Length
}

// IsOfType reports whether v's (Type, Length) pair matches d exactly.
func (v Value) IsOfType(d FieldDescriptor) bool {
	return v.Type == d.Type && v.Length == d.Length
}

// Values is an ordered vector of metadata values, matching the
// ordering of the FieldDescriptor list that shapes it.
type Values []Value

// CompareMetaData reports whether values exactly matches the shape
// described by descriptors: equal counts, and every value of the type
// of its corresponding descriptor slot.
func CompareMetaData(descriptors []FieldDescriptor, values []Value) bool {
	if len(values) != len(descriptors) {
		return false
	}
	for i, v := range values {
		if !v.IsOfType(descriptors[i]) {
			return false
		}
	}
	return true
}

// Encode concatenates every value's raw bytes in slot order. No
// framing is written; the caller's FieldDescriptor list is the only
// source of truth for how to split the result back apart.
func (vs Values) Encode() []byte {
	var buf bytes.Buffer
	for _, v := range vs {
		buf.Write(v.Data)
	}
	return buf.Bytes()
}

// TotalSize returns the sum of every descriptor's Size(), i.e. the
// exact byte length an Encode()'d Values matching descriptors occupies.
func TotalSize(descriptors []FieldDescriptor) int {
	total := 0
	for _, d := range descriptors {
		total += d.Size()
	}
	return total
}

// DecodeValues splits buf back into one Value per descriptor, in
// order, each sized by descriptors[i].Size(). buf must be exactly
// TotalSize(descriptors) bytes.
func DecodeValues(descriptors []FieldDescriptor, buf []byte) (Values, error) {
	want := TotalSize(descriptors)
	if len(buf) != want {
		return nil, errors.WrapInvalid(errors.ErrMetadataShapeMismatch, "metadata", "DecodeValues", "buffer size does not match descriptor total size")
	}

	values := make(Values, len(descriptors))
	offset := 0
	for i, d := range descriptors {
		size := d.Size()
		values[i] = Value{
			Type:   d.Type,
			Length: d.Length,
			Data:   append([]byte(nil), buf[offset:offset+size]...),
		}
		offset += size
	}
	return values, nil
}
