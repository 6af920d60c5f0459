package param

import (
	"fmt"

	"github.com/arjunveer/pgwire/numeric"
	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// NumericHandler encodes numeric.Decimal values via the decimal
// codec's Encode (§4.8); a DataError from Encode (infinity,
// out-of-range exponent/weight) propagates unchanged, which is why
// Examine returns it directly rather than wrapping it as a
// UsageError — it is a host-value problem, not a caller-shape
// problem (§7).
type NumericHandler struct{ q queue }

func (h *NumericHandler) Examine(v interface{}) error {
	d, ok := v.(numeric.Decimal)
	if !ok {
		return usageErr(fmt.Errorf("%w: want numeric.Decimal, got %T", ErrUnsupportedValue, v))
	}
	raw, err := numeric.Encode(d)
	if err != nil {
		return err
	}
	h.q.push(raw)
	return nil
}
func (h *NumericHandler) TotalSize() int                     { return h.q.size }
func (h *NumericHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *NumericHandler) OID() oid.OID                       { return oid.Numeric }
func (h *NumericHandler) ArrayOID() oid.OID                  { return oid.NumericArray }
func (h *NumericHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *NumericHandler) AllowsType(v interface{}) bool {
	_, ok := v.(numeric.Decimal)
	return ok
}

func (h *NumericHandler) Items() [][]byte { return h.q.items }
