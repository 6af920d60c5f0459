package param

import (
	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// Handler is a per-host-type parameter encoder (§4.9 contract), the
// Go rendering of "dynamic dispatch by type → closed variant" (§9):
// one concrete struct per host-value kind, selected by the type
// switch in For, in place of a host-type→handler dictionary.
type Handler interface {
	// Examine accumulates size and may finalize or widen the OID. It
	// may be called repeatedly for successive array elements.
	Examine(value interface{}) error
	// TotalSize reports the number of bytes EncodeInto will write.
	TotalSize() int
	// EncodeInto emits the payload for every previously examined
	// value, in order, and returns the number of bytes written. The
	// caller must pass a buffer of exactly TotalSize() bytes.
	EncodeInto(buf []byte) (int, error)
	// OID reports the scalar type OID this handler currently encodes
	// as (may change across Examine calls, e.g. IntHandler widening).
	OID() oid.OID
	// ArrayOID reports the array type OID paired with OID.
	ArrayOID() oid.OID
	// WireFormat reports Binary or Text.
	WireFormat() wire.Format
	// AllowsType reports whether value is acceptable to this handler
	// without changing its fixed type (used by the array handler to
	// decide "same type" vs "mixed types" for elements after the
	// first).
	AllowsType(value interface{}) bool
	// Items returns the per-value encoded payloads produced so far,
	// in examine order. The array handler uses this to wrap each
	// element in its own i32 length prefix (§4.9.3); EncodeInto
	// concatenates the same payloads without the prefixes.
	Items() [][]byte
}

// queue is the FIFO of already-encoded byte payloads every handler
// appends to during Examine and drains during EncodeInto (§9 "two-pass
// encode via queued artifacts"), so EncodeInto is a pure copy once the
// queue is finalized. IntHandler, which commits its width only after
// seeing every value, resets and rebuilds its queue whenever it widens.
type queue struct {
	items [][]byte
	size  int
}

func (q *queue) push(b []byte) {
	q.items = append(q.items, b)
	q.size += len(b)
}

func (q *queue) reset() {
	q.items = q.items[:0]
	q.size = 0
}

func (q *queue) drainInto(buf []byte) (int, error) {
	n := 0
	for _, b := range q.items {
		n += copy(buf[n:], b)
	}
	return n, nil
}

// putInt32 writes a big-endian length prefix, -1 encoded for NULL
// (the array wire layout's convention, §4.9.3).
func putInt32(buf []byte, v int32) {
	buf[0] = byte(v >> 24)
	buf[1] = byte(v >> 16)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v)
}
