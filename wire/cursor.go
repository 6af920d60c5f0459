package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Cursor is a bounds-checked sequential reader over a byte region
// borrowed from a libpq result. It never copies the region on
// construction; sub-cursoring shares the same backing array.
//
// Cursor mirrors poque's ValueCursor (advance/advance_view/
// advance_bytes/advance_text/cursor) but with typed, big-endian
// accessors in place of a struct-format string, the way
// jeroenrinzema/psql-wire's buffer.Reader exposes GetUint16/GetInt32
// rather than a generic unpack.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor constructs a Cursor over data. The Cursor never mutates
// or retains a copy of data; data must remain valid for the Cursor's
// lifetime (tied to the enclosing Result, per §3 Raw Value lifetime).
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len reports the total length of the underlying region.
func (c *Cursor) Len() int { return len(c.data) }

// AtEnd reports whether every byte of the region has been consumed.
func (c *Cursor) AtEnd() bool { return c.pos == len(c.data) }

// Remaining reports the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Advance reserves n bytes and returns the offset at which they
// start. It fails with a ProtocolError wrapping ErrLengthExceeded if
// fewer than n bytes remain.
func (c *Cursor) Advance(n int) (int, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return 0, protoErr("advance", ErrLengthExceeded)
	}
	start := c.pos
	c.pos += n
	return start, nil
}

// AdvanceToEnd consumes and returns every remaining byte.
func (c *Cursor) AdvanceToEnd() []byte {
	v := c.data[c.pos:]
	c.pos = len(c.data)
	return v
}

// AdvanceView consumes n bytes and returns a view over them without
// copying.
func (c *Cursor) AdvanceView(n int) ([]byte, error) {
	start, err := c.Advance(n)
	if err != nil {
		return nil, err
	}
	return c.data[start:c.pos], nil
}

// PeekView returns a view over the next n bytes without advancing
// the cursor.
func (c *Cursor) PeekView(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, protoErr("peek", ErrLengthExceeded)
	}
	return c.data[c.pos : c.pos+n], nil
}

// AdvanceBytes consumes n bytes and returns an owned copy of them.
func (c *Cursor) AdvanceBytes(n int) ([]byte, error) {
	v, err := c.AdvanceView(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// AdvanceText consumes n bytes and decodes them as UTF-8, failing if
// the bytes are not valid UTF-8.
func (c *Cursor) AdvanceText(n int) (string, error) {
	v, err := c.AdvanceView(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(v) {
		return "", protoErr("AdvanceText", errInvalidUTF8)
	}
	return string(v), nil
}

// SubCursor consumes n bytes and returns a new Cursor over that
// slice, for length-prefixed nested values such as array elements.
func (c *Cursor) SubCursor(n int) (*Cursor, error) {
	v, err := c.AdvanceView(n)
	if err != nil {
		return nil, err
	}
	return NewCursor(v), nil
}

func (c *Cursor) ReadUint8() (uint8, error) {
	start, err := c.Advance(1)
	if err != nil {
		return 0, err
	}
	return c.data[start], nil
}

func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadUint8()
	return v != 0, err
}

func (c *Cursor) ReadUint16() (uint16, error) {
	start, err := c.Advance(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(c.data[start:]), nil
}

func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

func (c *Cursor) ReadUint32() (uint32, error) {
	start, err := c.Advance(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(c.data[start:]), nil
}

func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

func (c *Cursor) ReadUint64() (uint64, error) {
	start, err := c.Advance(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(c.data[start:]), nil
}

func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// EnforceAtEnd returns ErrNotAtEnd-wrapped protocol error if the
// cursor has unread bytes remaining. Every registered reader's
// result passes through this at its call site (§4.1, invariant 3).
func (c *Cursor) EnforceAtEnd(op string) error {
	if !c.AtEnd() {
		return protoErr(op, ErrNotAtEnd)
	}
	return nil
}
