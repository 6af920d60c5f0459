package wire

import (
	"errors"
	"fmt"

	"github.com/arjunveer/pgwire/oid"
)

// MaxArrayDimensions is the highest dimension count the wire format
// and this codec accept (§3 Array value, §4.4 validation).
const MaxArrayDimensions = 6

var (
	errTooManyDimensions = errors.New("too many dimensions")
	errInvalidFlags      = errors.New("invalid array flags")
	errUnexpectedElem    = errors.New("unexpected element type")
)

// arrayReader builds the binary reader for an array OID whose
// elements have OID elem. The element reader is looked up from reg at
// decode time (not at registration time) so the wire's declared
// element OID is validated against whatever is registered then,
// matching §3's Type Registry entry contract.
func arrayReader(reg *Registry, elem oid.OID) Reader {
	return func(c *Cursor) (interface{}, error) {
		ndim, err := c.ReadUint32()
		if err != nil {
			return nil, err
		}
		flags, err := c.ReadInt32()
		if err != nil {
			return nil, err
		}
		elemOID, err := c.ReadUint32()
		if err != nil {
			return nil, err
		}

		if ndim > MaxArrayDimensions {
			return nil, protoErr("array", errTooManyDimensions)
		}
		if uint32(flags)&1 != uint32(flags) {
			return nil, protoErr("array", errInvalidFlags)
		}
		if oid.OID(elemOID) != elem {
			return nil, protoErr("array", fmt.Errorf("%w: got %s want %s", errUnexpectedElem, oid.Name(oid.OID(elemOID)), oid.Name(elem)))
		}
		if ndim == 0 {
			return []interface{}{}, nil
		}

		dims := make([]int, ndim)
		for i := range dims {
			length, err := c.ReadInt32()
			if err != nil {
				return nil, err
			}
			if _, err := c.ReadInt32(); err != nil { // lower bound, ignored on decode
				return nil, err
			}
			dims[i] = int(length)
		}

		reader := reg.Binary(elem)
		if reader == nil {
			reader = rawBytesReader
		}
		return readArrayDim(c, dims, reader)
	}
}

// readArrayDim recursively consumes dims[0] elements (or nested
// sub-arrays for dims[1:]) from c, depth-first, which reproduces the
// wire's flat element sequence without needing to track a separate
// flat index.
func readArrayDim(c *Cursor, dims []int, reader Reader) (interface{}, error) {
	if len(dims) == 0 {
		length, err := c.ReadInt32()
		if err != nil {
			return nil, err
		}
		if length == -1 {
			return nil, nil
		}
		sub, err := c.SubCursor(int(length))
		if err != nil {
			return nil, err
		}
		val, err := reader(sub)
		if err != nil {
			return nil, err
		}
		if err := sub.EnforceAtEnd("array element"); err != nil {
			return nil, err
		}
		return val, nil
	}

	out := make([]interface{}, dims[0])
	for i := range out {
		v, err := readArrayDim(c, dims[1:], reader)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func rawBytesReader(c *Cursor) (interface{}, error) {
	return c.AdvanceBytes(c.Remaining())
}
