package wire

import (
	"errors"
	"math/big"

	"github.com/arjunveer/pgwire/oid"
)

var errBadBitChar = errors.New("bit-string character not in {'0','1'}")

// BitString is a fixed- or variable-length string of bits, stored
// MSB-first the way the wire packs them (§4.7). big.Int holds the
// value; Len tracks the declared bit count separately since leading
// zero bits are not otherwise recoverable from a big.Int — no
// ecosystem library in the retrieved pack specializes in
// arbitrary-width bit accumulation beyond what math/big already
// provides for this.
type BitString struct {
	Len   int
	Value *big.Int
}

func readBitBin(c *Cursor) (interface{}, error) {
	nbits, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	nbytes := (int(nbits) + 7) / 8
	raw, err := c.AdvanceBytes(nbytes)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(raw)
	if nbits%8 != 0 && nbytes > 0 {
		v.Rsh(v, uint(nbytes*8-int(nbits)))
	}
	return BitString{Len: int(nbits), Value: v}, nil
}

// readBitText reads a bit string as '0'/'1' characters, shifting each
// one into a big.Int, matching poque's _read_bit_text (§4.3/§4.7).
func readBitText(c *Cursor) (interface{}, error) {
	raw := c.AdvanceToEnd()
	v := new(big.Int)
	for _, ch := range raw {
		if ch != '0' && ch != '1' {
			return nil, protoErr("bit", errBadBitChar)
		}
		v.Lsh(v, 1)
		if ch == '1' {
			v.SetBit(v, 0, 1)
		}
	}
	return BitString{Len: len(raw), Value: v}, nil
}

func registerBitstring(r *Registry) {
	r.register(oid.Bit, readBitText, readBitBin)
	r.register(oid.Varbit, readBitText, readBitBin)
}
