package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_String(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{Char, "CHAR"},
		{Int16, "INT16"},
		{Uint64, "UINT64"},
		{Float32, "FLOAT"},
		{Float64, "DOUBLE"},
		{invalidType, "INVALID"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.typ.String())
	}
}

func TestType_IsValid(t *testing.T) {
	assert.True(t, Float64.IsValid())
	assert.False(t, invalidType.IsValid())
	assert.False(t, Type(200).IsValid())
}

func TestFieldDescriptor_Size(t *testing.T) {
	d := FieldDescriptor{Type: Int16, Length: 4}
	assert.Equal(t, 8, d.Size())

	d = FieldDescriptor{Type: Char, Length: 10}
	assert.Equal(t, 10, d.Size())
}

func TestValue_IsOfType(t *testing.T) {
	d := FieldDescriptor{Type: Int16, Length: 1}
	v := Value{Type: Int16, Length: 1, Data: []byte{1, 0}}
	assert.True(t, v.IsOfType(d))

	wrongType := Value{Type: Uint16, Length: 1, Data: []byte{1, 0}}
	assert.False(t, wrongType.IsOfType(d))

	wrongLength := Value{Type: Int16, Length: 2, Data: []byte{1, 0, 2, 0}}
	assert.False(t, wrongLength.IsOfType(d))
}

func TestCompareMetaData(t *testing.T) {
	descs := []FieldDescriptor{
		{Type: Int16, Length: 1},
		{Type: Float32, Length: 2},
	}

	t.Run("matching shape", func(t *testing.T) {
		values := []Value{
			{Type: Int16, Length: 1, Data: make([]byte, 2)},
			{Type: Float32, Length: 2, Data: make([]byte, 8)},
		}
		assert.True(t, CompareMetaData(descs, values))
	})

	t.Run("count mismatch", func(t *testing.T) {
		values := []Value{{Type: Int16, Length: 1, Data: make([]byte, 2)}}
		assert.False(t, CompareMetaData(descs, values))
	})

	t.Run("type mismatch in one slot", func(t *testing.T) {
		values := []Value{
			{Type: Int16, Length: 1, Data: make([]byte, 2)},
			{Type: Float64, Length: 2, Data: make([]byte, 16)},
		}
		assert.False(t, CompareMetaData(descs, values))
	})

	t.Run("zero descriptors, zero values", func(t *testing.T) {
		assert.True(t, CompareMetaData(nil, nil))
	})
}

func TestValues_EncodeAndDecode_RoundTrip(t *testing.T) {
	descs := []FieldDescriptor{
		{Type: Int16, Length: 1, Name: "trial"},
		{Type: Float32, Length: 2, Name: "coords"},
	}
	original := Values{
		{Type: Int16, Length: 1, Data: []byte{0x2A, 0x00}},
		{Type: Float32, Length: 2, Data: []byte{0, 0, 128, 63, 0, 0, 0, 64}},
	}

	encoded := original.Encode()
	assert.Equal(t, TotalSize(descs), len(encoded))

	decoded, err := DecodeValues(descs, encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeValues_SizeMismatch(t *testing.T) {
	descs := []FieldDescriptor{{Type: Int32, Length: 1}}
	_, err := DecodeValues(descs, []byte{1, 2, 3})
	require.Error(t, err)
}

func TestDecodeValues_EmptyDescriptors(t *testing.T) {
	decoded, err := DecodeValues(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}
