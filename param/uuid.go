package param

import (
	"fmt"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
	"github.com/google/uuid"
)

// UUIDHandler encodes github.com/google/uuid.UUID values as their 16
// raw bytes (§4.6, §2.2 domain stack).
type UUIDHandler struct{ q queue }

func (h *UUIDHandler) Examine(v interface{}) error {
	u, ok := v.(uuid.UUID)
	if !ok {
		return usageErr(fmt.Errorf("%w: want uuid.UUID, got %T", ErrUnsupportedValue, v))
	}
	b := u // array value, copy is safe to take address of
	h.q.push(b[:])
	return nil
}
func (h *UUIDHandler) TotalSize() int                     { return h.q.size }
func (h *UUIDHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *UUIDHandler) OID() oid.OID                       { return oid.UUID }
func (h *UUIDHandler) ArrayOID() oid.OID                  { return oid.UUIDArray }
func (h *UUIDHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *UUIDHandler) AllowsType(v interface{}) bool {
	_, ok := v.(uuid.UUID)
	return ok
}

func (h *UUIDHandler) Items() [][]byte { return h.q.items }
