package codec

import (
	"encoding/binary"
	"math"
)

// cursor is a typed view over a fixed-size byte buffer: every field
// read or write goes through an explicit offset and width rather than
// raw pointer arithmetic. The layout tables in layout.go are the only
// source of truth for which offset means what.
type cursor struct {
	buf []byte
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) bytes() []byte { return c.buf }

func (c *cursor) putUint8(offset int, v uint8) {
	c.buf[offset] = v
}

func (c *cursor) uint8At(offset int) uint8 {
	return c.buf[offset]
}

func (c *cursor) putUint16(offset int, v uint16) {
	binary.LittleEndian.PutUint16(c.buf[offset:offset+2], v)
}

func (c *cursor) uint16At(offset int) uint16 {
	return binary.LittleEndian.Uint16(c.buf[offset : offset+2])
}

func (c *cursor) putUint64(offset int, v uint64) {
	binary.LittleEndian.PutUint64(c.buf[offset:offset+8], v)
}

func (c *cursor) uint64At(offset int) uint64 {
	return binary.LittleEndian.Uint64(c.buf[offset : offset+8])
}

func (c *cursor) putFloat32(offset int, v float32) {
	binary.LittleEndian.PutUint32(c.buf[offset:offset+4], math.Float32bits(v))
}

func (c *cursor) float32At(offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(c.buf[offset : offset+4]))
}

func (c *cursor) putBytes(offset int, data []byte) {
	copy(c.buf[offset:], data)
}

func (c *cursor) bytesAt(offset, length int) []byte {
	return c.buf[offset : offset+length]
}
