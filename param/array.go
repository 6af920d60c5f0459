package param

import (
	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// ArrayHandler encodes a []interface{} value — possibly nested, up to
// 6 levels deep — as PostgreSQL's multi-dimensional array wire format
// (§4.9.3). It validates shape before emitting a single byte, fixes
// its element type from the first non-nil leaf, and dispatches each
// leaf's encoding to that element's own Handler.
type ArrayHandler struct {
	q     queue
	dims  []int32
	inner Handler
}

func (h *ArrayHandler) Examine(value interface{}) error {
	top, ok := value.([]interface{})
	if !ok {
		return usageErr(ErrUnsupportedValue)
	}

	var dims []int32
	var leaves []interface{}
	leafDepth := -1

	var walk func(v interface{}, depth int) error
	walk = func(v interface{}, depth int) error {
		list, isList := v.([]interface{})
		if isList {
			if leafDepth != -1 && depth >= leafDepth {
				return usageErr(ErrTooManyDimensions)
			}
			if depth == len(dims) {
				if depth >= 6 {
					return usageErr(ErrTooManyDimensions)
				}
				dims = append(dims, int32(len(list)))
			} else if dims[depth] != int32(len(list)) {
				return usageErr(ErrInconsistentSize)
			}
			for _, e := range list {
				if err := walk(e, depth+1); err != nil {
					return err
				}
			}
			return nil
		}
		if leafDepth == -1 {
			leafDepth = depth
		} else if leafDepth != depth {
			return usageErr(ErrInconsistentSize)
		}
		leaves = append(leaves, v)
		return nil
	}
	if err := walk(top, 0); err != nil {
		return err
	}

	var inner Handler
	nullMask := make([]bool, len(leaves))
	for i, leaf := range leaves {
		if leaf == nil {
			nullMask[i] = true
			continue
		}
		if inner == nil {
			hnd, err := For(leaf)
			if err != nil {
				return err
			}
			inner = hnd
		} else if !inner.AllowsType(leaf) {
			return usageErr(ErrMixedTypes)
		}
		if err := inner.Examine(leaf); err != nil {
			return err
		}
	}

	var items [][]byte
	if inner != nil {
		items = inner.Items()
	}
	blobs := make([][]byte, len(leaves))
	j := 0
	for i, isNull := range nullMask {
		if isNull {
			continue
		}
		blobs[i] = items[j]
		j++
	}

	h.dims = dims
	h.inner = inner

	ndim := int32(len(dims))
	elemOID := oid.Text
	if inner != nil {
		elemOID = inner.OID()
	}
	hasNulls := int32(0)
	for _, n := range nullMask {
		if n {
			hasNulls = 1
			break
		}
	}

	header := make([]byte, 12+8*len(dims))
	putInt32(header[0:4], ndim)
	putInt32(header[4:8], hasNulls)
	putInt32(header[8:12], int32(elemOID))
	for i, d := range dims {
		off := 12 + 8*i
		putInt32(header[off:off+4], d)
		putInt32(header[off+4:off+8], 1) // lower bound, always 1 (§3)
	}

	size := len(header)
	for i, isNull := range nullMask {
		if isNull {
			size += 4
		} else {
			size += 4 + len(blobs[i])
		}
	}
	buf := make([]byte, size)
	n := copy(buf, header)
	for i, isNull := range nullMask {
		if isNull {
			putInt32(buf[n:n+4], -1)
			n += 4
			continue
		}
		putInt32(buf[n:n+4], int32(len(blobs[i])))
		n += 4
		n += copy(buf[n:], blobs[i])
	}
	h.q.push(buf)
	return nil
}

func (h *ArrayHandler) TotalSize() int                     { return h.q.size }
func (h *ArrayHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }

// OID reports the array OID a bound parameter of this shape carries
// on the wire — the element's array OID, or TEXTARRAY for an empty
// array by convention (§4.9.3).
func (h *ArrayHandler) OID() oid.OID {
	if h.inner == nil {
		return oid.TextArray
	}
	return h.inner.ArrayOID()
}

// ArrayOID has no distinct meaning for ArrayHandler: PostgreSQL
// represents nested lists as one N-dimensional array of the leaf
// element type, never an array of arrays, so it reports the same OID
// as OID.
func (h *ArrayHandler) ArrayOID() oid.OID { return h.OID() }

func (h *ArrayHandler) WireFormat() wire.Format { return wire.Binary }

func (h *ArrayHandler) AllowsType(v interface{}) bool {
	_, ok := v.([]interface{})
	return ok
}

func (h *ArrayHandler) Items() [][]byte { return h.q.items }
