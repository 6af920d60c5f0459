package wire

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/arjunveer/pgwire/oid"
)

func registerText(r *Registry) {
	text := textScalarReader
	r.register(oid.Text, text, text)
	r.register(oid.Varchar, text, text)
	r.register(oid.Bpchar, text, text)
	r.register(oid.NameOID, text, text)
	r.register(oid.Cstring, text, text)
	r.register(oid.XML, text, text)
	r.register(oid.Unknown, text, text)
	r.register(oid.Char, rawByteReader, rawByteReader)
	r.register(oid.Bytea, readByteaText, rawBytesReader)
	r.register(oid.Tid, readTidText, readTidBin)
}

// textScalarReader consumes the whole cursor as UTF-8 text; used for
// both wire formats since these types carry the same bytes either way
// (§4.2, §4.3).
func textScalarReader(c *Cursor) (interface{}, error) {
	return c.AdvanceText(c.Remaining())
}

func rawByteReader(c *Cursor) (interface{}, error) {
	return c.AdvanceBytes(c.Remaining())
}

var errBadBytea = errors.New("invalid bytea escape sequence")

// readByteaText implements §4.3's two bytea text forms: `\x` hex, or
// backslash-octal escapes.
func readByteaText(c *Cursor) (interface{}, error) {
	raw := c.AdvanceToEnd()
	if len(raw) >= 2 && raw[0] == '\\' && raw[1] == 'x' {
		out := make([]byte, hex.DecodedLen(len(raw)-2))
		if _, err := hex.Decode(out, raw[2:]); err != nil {
			return nil, protoErr("bytea", fmt.Errorf("%w: %v", errBadBytea, err))
		}
		return out, nil
	}

	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b != '\\' {
			out = append(out, b)
			continue
		}
		if i+1 >= len(raw) {
			return nil, protoErr("bytea", errBadBytea)
		}
		if raw[i+1] == '\\' {
			out = append(out, '\\')
			i++
			continue
		}
		if i+3 >= len(raw) {
			return nil, protoErr("bytea", errBadBytea)
		}
		o1, o2, o3 := raw[i+1], raw[i+2], raw[i+3]
		if !isOctal(o1) || !isOctal(o2) || !isOctal(o3) {
			return nil, protoErr("bytea", errBadBytea)
		}
		out = append(out, (o1-'0')*64+(o2-'0')*8+(o3-'0'))
		i += 3
	}
	return out, nil
}

func isOctal(b byte) bool { return b >= '0' && b <= '7' }

func readTidBin(c *Cursor) (interface{}, error) {
	block, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	offset, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	return [2]uint64{uint64(block), uint64(offset)}, nil
}

var errBadTid = errors.New("invalid tid text format")

func readTidText(c *Cursor) (interface{}, error) {
	s, err := c.AdvanceText(c.Remaining())
	if err != nil {
		return nil, err
	}
	var block, offset uint64
	if _, err := fmt.Sscanf(s, "(%d,%d)", &block, &offset); err != nil {
		return nil, protoErr("tid", fmt.Errorf("%w: %q", errBadTid, s))
	}
	return [2]uint64{block, offset}, nil
}
