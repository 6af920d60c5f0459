package param

import (
	"fmt"
	"math/big"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

type intWidth int

const (
	widthI32 intWidth = iota
	widthI64
	widthText
)

var (
	minI32 = big.NewInt(-(1 << 31))
	maxI32 = big.NewInt((1 << 31) - 1)
	minI64 = new(big.Int).SetInt64(-(1 << 63))
	maxI64 = new(big.Int).SetInt64((1 << 63) - 1)
)

// IntHandler implements the widening state machine of §4.9.2: it
// starts in I32 mode and widens to I64, then to Text, re-examining
// every previously stored value each time it widens so a single array
// parameter containing e.g. [3, 2_147_483_648, 17_000_000_000_000_000_000]
// (scenario S5, which overflows even int64) ends up fully in the
// narrowest width that fits every value. Values are kept as
// *big.Int internally rather than Go's native int64 so a value
// outside int64's range can still widen to Text instead of being
// rejected outright.
type IntHandler struct {
	width  intWidth
	values []*big.Int
	q      queue
}

func (h *IntHandler) Examine(v interface{}) error {
	n, ok := asBigInt(v)
	if !ok {
		return usageErr(fmt.Errorf("%w: want integer, got %T", ErrUnsupportedValue, v))
	}
	h.values = append(h.values, n)

	if h.width == widthI32 && (n.Cmp(minI32) < 0 || n.Cmp(maxI32) > 0) {
		h.width = widthI64
	}
	if h.width == widthI64 && (n.Cmp(minI64) < 0 || n.Cmp(maxI64) > 0) {
		h.width = widthText
	}
	h.rebuild()
	return nil
}

// rebuild re-renders every stored value into the current width's
// wire encoding, per the widen-and-re-examine rule (§4.9.2, invariant
// 5 — once widened the handler never narrows back).
func (h *IntHandler) rebuild() {
	h.q.reset()
	switch h.width {
	case widthI32:
		for _, n := range h.values {
			var buf [4]byte
			putInt32(buf[:], int32(n.Int64()))
			h.q.push(append([]byte(nil), buf[:]...))
		}
	case widthI64:
		for _, n := range h.values {
			var buf [8]byte
			u := uint64(n.Int64())
			for i := 0; i < 8; i++ {
				buf[i] = byte(u >> (56 - 8*i))
			}
			h.q.push(buf[:])
		}
	case widthText:
		for _, n := range h.values {
			h.q.push([]byte(n.Text(10)))
		}
	}
}

func (h *IntHandler) TotalSize() int                     { return h.q.size }
func (h *IntHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }

func (h *IntHandler) OID() oid.OID {
	switch h.width {
	case widthI32:
		return oid.Int4
	case widthI64:
		return oid.Int8
	default:
		return oid.Text
	}
}

func (h *IntHandler) ArrayOID() oid.OID {
	switch h.width {
	case widthI32:
		return oid.Int4Array
	case widthI64:
		return oid.Int8Array
	default:
		return oid.TextArray
	}
}

func (h *IntHandler) WireFormat() wire.Format { return wire.Binary }

// AllowsType reports true for any integer-shaped value, including
// once the handler has widened to Text (§4.9.2: "once in Text, any
// further integer is accepted").
func (h *IntHandler) AllowsType(v interface{}) bool {
	_, ok := asBigInt(v)
	return ok
}

func asBigInt(v interface{}) (*big.Int, bool) {
	switch x := v.(type) {
	case int:
		return big.NewInt(int64(x)), true
	case int8:
		return big.NewInt(int64(x)), true
	case int16:
		return big.NewInt(int64(x)), true
	case int32:
		return big.NewInt(int64(x)), true
	case int64:
		return big.NewInt(x), true
	case uint:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint8:
		return big.NewInt(int64(x)), true
	case uint16:
		return big.NewInt(int64(x)), true
	case uint32:
		return big.NewInt(int64(x)), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	case *big.Int:
		return x, true
	default:
		return nil, false
	}
}

func (h *IntHandler) Items() [][]byte { return h.q.items }
