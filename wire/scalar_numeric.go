package wire

import (
	"fmt"

	"github.com/arjunveer/pgwire/numeric"
	"github.com/arjunveer/pgwire/oid"
	"github.com/shopspring/decimal"
)

func registerNumeric(r *Registry) {
	r.register(oid.Bool, readBoolText, readBoolBin)
	r.register(oid.Int2, nil, readInt2Bin)
	r.register(oid.Int4, nil, readInt4Bin)
	r.register(oid.Int8, nil, readInt8Bin)
	r.register(oid.OIDType, nil, readUint32Bin)
	r.register(oid.Xid, nil, readUint32Bin)
	r.register(oid.Cid, nil, readUint32Bin)
	r.register(oid.RegProc, nil, readUint32Bin)
	r.register(oid.Float4, readFloatText, readFloat4Bin)
	r.register(oid.Float8, readFloatText, readFloat8Bin)
	r.register(oid.Cash, nil, readCashBin)
	r.register(oid.Numeric, readNumericText, readNumericBin)
}

func readBoolBin(c *Cursor) (interface{}, error) {
	return c.ReadBool()
}

func readBoolText(c *Cursor) (interface{}, error) {
	s, err := c.AdvanceText(c.Remaining())
	if err != nil {
		return nil, err
	}
	return s == "t", nil
}

func readInt2Bin(c *Cursor) (interface{}, error) { return c.ReadInt16() }
func readInt4Bin(c *Cursor) (interface{}, error) { return c.ReadInt32() }
func readInt8Bin(c *Cursor) (interface{}, error) { return c.ReadInt64() }
func readUint32Bin(c *Cursor) (interface{}, error) {
	return c.ReadUint32()
}

func readFloat4Bin(c *Cursor) (interface{}, error) { return c.ReadFloat32() }
func readFloat8Bin(c *Cursor) (interface{}, error) { return c.ReadFloat64() }

func readFloatText(c *Cursor) (interface{}, error) {
	return c.AdvanceText(c.Remaining())
}

// readCashBin decodes the money type: a signed 64-bit count of cents,
// scale preserved in the value itself (§4.2).
func readCashBin(c *Cursor) (interface{}, error) {
	return c.ReadInt64()
}

func readNumericBin(c *Cursor) (interface{}, error) {
	raw := c.AdvanceToEnd()
	d, err := numeric.Decode(raw)
	if err != nil {
		return nil, protoErr("numeric", err)
	}
	return d, nil
}

func readNumericText(c *Cursor) (interface{}, error) {
	s, err := c.AdvanceText(c.Remaining())
	if err != nil {
		return nil, err
	}
	if s == "NaN" {
		return numeric.NaNDecimal(), nil
	}
	d, err := numericFromString(s)
	if err != nil {
		return nil, protoErr("numeric", err)
	}
	return d, nil
}

func numericFromString(s string) (numeric.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return numeric.Decimal{}, fmt.Errorf("invalid numeric text %q: %w", s, err)
	}
	return numeric.NewFromDecimal(v), nil
}
