package wire

import (
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/arjunveer/pgwire/oid"
)

const (
	pgAFInet  = 2
	pgAFInet6 = 3
)

var (
	errBadInetFamily = errors.New("invalid inet address family")
	errBadInetLen    = errors.New("invalid inet address length")
	errBadInetCIDR   = errors.New("invalid is_cidr flag for OID")
)

// NetworkValue is a decoded inet/cidr value: the prefix itself
// (netip.Prefix carries both address and mask) plus whether the wire
// marked it as a cidr (host bits forced to zero) rather than inet
// (§4.7, §4.9's domain-stack decision to use net/netip over a
// hand-rolled struct).
type NetworkValue struct {
	Prefix netip.Prefix
	IsCIDR bool
}

// readInetBin decodes an inet/cidr value for the given OID, rejecting
// a wire is_cidr flag that disagrees with it — CIDR must carry
// is_cidr=1 and INET must carry is_cidr=0 (§4.6, §7).
func readInetBin(want oid.OID) Reader {
	return func(c *Cursor) (interface{}, error) {
		family, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		bits, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		isCIDR, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		addrLen, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}

		wantCIDR := want == oid.Cidr
		if (isCIDR != 0) != wantCIDR {
			return nil, protoErr("inet", errBadInetCIDR)
		}

		var wantLen int
		switch family {
		case pgAFInet:
			wantLen = 4
		case pgAFInet6:
			wantLen = 16
		default:
			return nil, protoErr("inet", fmt.Errorf("%w: %d", errBadInetFamily, family))
		}
		if int(addrLen) != wantLen {
			return nil, protoErr("inet", errBadInetLen)
		}

		raw, err := c.AdvanceBytes(wantLen)
		if err != nil {
			return nil, err
		}
		addr, ok := netip.AddrFromSlice(raw)
		if !ok {
			return nil, protoErr("inet", errBadInetLen)
		}
		prefix := netip.PrefixFrom(addr, int(bits))
		return NetworkValue{Prefix: prefix, IsCIDR: isCIDR != 0}, nil
	}
}

func readMacaddrBin(c *Cursor) (interface{}, error) {
	raw, err := c.AdvanceBytes(6)
	if err != nil {
		return nil, err
	}
	return net.HardwareAddr(append([]byte(nil), raw...)), nil
}

func readMacaddr8Bin(c *Cursor) (interface{}, error) {
	raw, err := c.AdvanceBytes(8)
	if err != nil {
		return nil, err
	}
	return net.HardwareAddr(append([]byte(nil), raw...)), nil
}

func registerNetwork(r *Registry) {
	r.register(oid.Inet, nil, readInetBin(oid.Inet))
	r.register(oid.Cidr, nil, readInetBin(oid.Cidr))
	r.register(oid.Macaddr, nil, readMacaddrBin)
	r.register(oid.Macaddr8, nil, readMacaddr8Bin)
}
