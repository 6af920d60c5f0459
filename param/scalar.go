package param

import (
	"fmt"
	"math"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// BoolHandler encodes Go bool values as one byte each (§4.2).
type BoolHandler struct{ q queue }

func (h *BoolHandler) Examine(v interface{}) error {
	b, ok := v.(bool)
	if !ok {
		return usageErr(fmt.Errorf("%w: want bool, got %T", ErrUnsupportedValue, v))
	}
	var buf [1]byte
	if b {
		buf[0] = 1
	}
	h.q.push(buf[:])
	return nil
}
func (h *BoolHandler) TotalSize() int                     { return h.q.size }
func (h *BoolHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *BoolHandler) OID() oid.OID                       { return oid.Bool }
func (h *BoolHandler) ArrayOID() oid.OID                  { return oid.BoolArray }
func (h *BoolHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *BoolHandler) AllowsType(v interface{}) bool       { _, ok := v.(bool); return ok }

// FloatHandler encodes Go float64 (and float32, widened) values as
// 8-byte IEEE 754 doubles, targeting FLOAT8 (§4.2).
type FloatHandler struct{ q queue }

func (h *FloatHandler) Examine(v interface{}) error {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	default:
		return usageErr(fmt.Errorf("%w: want float, got %T", ErrUnsupportedValue, v))
	}
	var buf [8]byte
	bits := math.Float64bits(f)
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (56 - 8*i))
	}
	h.q.push(buf[:])
	return nil
}
func (h *FloatHandler) TotalSize() int                     { return h.q.size }
func (h *FloatHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *FloatHandler) OID() oid.OID                       { return oid.Float8 }
func (h *FloatHandler) ArrayOID() oid.OID                  { return oid.Float8Array }
func (h *FloatHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *FloatHandler) AllowsType(v interface{}) bool {
	switch v.(type) {
	case float64, float32:
		return true
	default:
		return false
	}
}

// TextHandler encodes Go strings as their UTF-8 bytes, targeting TEXT
// (§4.2/§4.3). Used both as the default string handler and as the
// IntHandler's text-fallback target OID.
type TextHandler struct{ q queue }

func (h *TextHandler) Examine(v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return usageErr(fmt.Errorf("%w: want string, got %T", ErrUnsupportedValue, v))
	}
	h.q.push([]byte(s))
	return nil
}
func (h *TextHandler) TotalSize() int                     { return h.q.size }
func (h *TextHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *TextHandler) OID() oid.OID                       { return oid.Text }
func (h *TextHandler) ArrayOID() oid.OID                  { return oid.TextArray }
func (h *TextHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *TextHandler) AllowsType(v interface{}) bool       { _, ok := v.(string); return ok }

// BytesHandler encodes Go []byte values verbatim, targeting BYTEA
// (§4.3).
type BytesHandler struct{ q queue }

func (h *BytesHandler) Examine(v interface{}) error {
	b, ok := v.([]byte)
	if !ok {
		return usageErr(fmt.Errorf("%w: want []byte, got %T", ErrUnsupportedValue, v))
	}
	h.q.push(b)
	return nil
}
func (h *BytesHandler) TotalSize() int                     { return h.q.size }
func (h *BytesHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *BytesHandler) OID() oid.OID                       { return oid.Bytea }
func (h *BytesHandler) ArrayOID() oid.OID                  { return oid.ByteaArray }
func (h *BytesHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *BytesHandler) AllowsType(v interface{}) bool       { _, ok := v.([]byte); return ok }

// Money is a wrapper marking an int64 as a fixed-point money value
// (signed count of cents) rather than a plain integer parameter,
// disambiguating it from IntHandler's widening dispatch (§4.12).
type Money int64

// MoneyHandler encodes Money values, fixed at CASH, never widening
// unlike IntHandler (§4.12).
type MoneyHandler struct{ q queue }

func (h *MoneyHandler) Examine(v interface{}) error {
	m, ok := v.(Money)
	if !ok {
		return usageErr(fmt.Errorf("%w: want param.Money, got %T", ErrUnsupportedValue, v))
	}
	var buf [8]byte
	u := uint64(m)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (56 - 8*i))
	}
	h.q.push(buf[:])
	return nil
}
func (h *MoneyHandler) TotalSize() int                     { return h.q.size }
func (h *MoneyHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *MoneyHandler) OID() oid.OID                       { return oid.Cash }
func (h *MoneyHandler) ArrayOID() oid.OID                  { return oid.CashArray }
func (h *MoneyHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *MoneyHandler) AllowsType(v interface{}) bool       { _, ok := v.(Money); return ok }

func (h *BoolHandler) Items() [][]byte { return h.q.items }
func (h *FloatHandler) Items() [][]byte { return h.q.items }
func (h *TextHandler) Items() [][]byte { return h.q.items }
func (h *BytesHandler) Items() [][]byte { return h.q.items }
func (h *MoneyHandler) Items() [][]byte { return h.q.items }
