package param

import (
	"fmt"
	"math/big"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// BitHandler encodes wire.BitString values, targeting VARBIT — the
// wire layout for BIT(n) and VARBIT is identical (a bit count
// followed by packed bytes), so a fixed-length BIT(n) column accepts
// a VARBIT-formatted parameter the server itself will validate the
// length of (§4.7).
type BitHandler struct{ q queue }

func (h *BitHandler) Examine(v interface{}) error {
	b, ok := v.(wire.BitString)
	if !ok {
		return usageErr(fmt.Errorf("%w: want wire.BitString, got %T", ErrUnsupportedValue, v))
	}
	nbytes := (b.Len + 7) / 8
	buf := make([]byte, 4+nbytes)
	putInt32(buf[0:4], int32(b.Len))
	if b.Value != nil {
		v := b.Value
		if b.Len%8 != 0 && nbytes > 0 {
			shift := uint(nbytes*8 - b.Len)
			v = new(big.Int).Lsh(v, shift)
		}
		raw := v.Bytes()
		copy(buf[4+nbytes-len(raw):], raw)
	}
	h.q.push(buf)
	return nil
}
func (h *BitHandler) TotalSize() int                     { return h.q.size }
func (h *BitHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *BitHandler) OID() oid.OID                       { return oid.Varbit }
func (h *BitHandler) ArrayOID() oid.OID                  { return oid.VarbitArray }
func (h *BitHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *BitHandler) AllowsType(v interface{}) bool {
	_, ok := v.(wire.BitString)
	return ok
}

func (h *BitHandler) Items() [][]byte { return h.q.items }
