package param

import (
	"fmt"
	"net"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// NetworkHandler encodes wire.NetworkValue values, targeting INET or
// CIDR depending on the value's IsCIDR flag (§4.6).
type NetworkHandler struct {
	q      queue
	isCIDR bool
}

func (h *NetworkHandler) Examine(v interface{}) error {
	nv, ok := v.(wire.NetworkValue)
	if !ok {
		return usageErr(fmt.Errorf("%w: want wire.NetworkValue, got %T", ErrUnsupportedValue, v))
	}
	h.isCIDR = nv.IsCIDR

	addr := nv.Prefix.Addr()
	var family byte
	var raw []byte
	if addr.Is4() {
		family = 2
		b4 := addr.As4()
		raw = b4[:]
	} else {
		family = 3
		b16 := addr.As16()
		raw = b16[:]
	}
	isCIDR := byte(0)
	if nv.IsCIDR {
		isCIDR = 1
	}
	buf := make([]byte, 4+len(raw))
	buf[0] = family
	buf[1] = byte(nv.Prefix.Bits())
	buf[2] = isCIDR
	buf[3] = byte(len(raw))
	copy(buf[4:], raw)
	h.q.push(buf)
	return nil
}
func (h *NetworkHandler) TotalSize() int                     { return h.q.size }
func (h *NetworkHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }

func (h *NetworkHandler) OID() oid.OID {
	if h.isCIDR {
		return oid.Cidr
	}
	return oid.Inet
}
func (h *NetworkHandler) ArrayOID() oid.OID {
	if h.isCIDR {
		return oid.CidrArray
	}
	return oid.InetArray
}
func (h *NetworkHandler) WireFormat() wire.Format { return wire.Binary }
func (h *NetworkHandler) AllowsType(v interface{}) bool {
	_, ok := v.(wire.NetworkValue)
	return ok
}

// MacaddrHandler encodes net.HardwareAddr values, targeting MACADDR
// (6 bytes) or MACADDR8 (8 bytes) depending on the address length.
type MacaddrHandler struct {
	q      queue
	is8    bool
}

var errBadMacaddrLen = fmt.Errorf("macaddr must be 6 or 8 bytes")

func (h *MacaddrHandler) Examine(v interface{}) error {
	hw, ok := v.(net.HardwareAddr)
	if !ok {
		return usageErr(fmt.Errorf("%w: want net.HardwareAddr, got %T", ErrUnsupportedValue, v))
	}
	switch len(hw) {
	case 6:
		h.is8 = false
	case 8:
		h.is8 = true
	default:
		return usageErr(errBadMacaddrLen)
	}
	h.q.push(append([]byte(nil), hw...))
	return nil
}
func (h *MacaddrHandler) TotalSize() int                     { return h.q.size }
func (h *MacaddrHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *MacaddrHandler) OID() oid.OID {
	if h.is8 {
		return oid.Macaddr8
	}
	return oid.Macaddr
}
func (h *MacaddrHandler) ArrayOID() oid.OID {
	if h.is8 {
		return oid.Macaddr8Array
	}
	return oid.MacaddrArray
}
func (h *MacaddrHandler) WireFormat() wire.Format { return wire.Binary }
func (h *MacaddrHandler) AllowsType(v interface{}) bool {
	hw, ok := v.(net.HardwareAddr)
	return ok && (len(hw) == 6 || len(hw) == 8)
}

func (h *NetworkHandler) Items() [][]byte { return h.q.items }
func (h *MacaddrHandler) Items() [][]byte { return h.q.items }
