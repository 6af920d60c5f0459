package param

import (
	"encoding/json"
	"fmt"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// JSONValue wraps an arbitrary Go value to be marshaled and sent as
// JSON text (no binary header, §4.9).
type JSONValue struct{ V interface{} }

// JSONBValue wraps an arbitrary Go value to be marshaled and sent as
// JSONB, which is the same JSON text prefixed by the container
// version byte (§4.9, §9).
type JSONBValue struct{ V interface{} }

const jsonbParamVersion = 1

// JSONHandler encodes JSONValue/JSONBValue values via encoding/json,
// targeting JSON or JSONB depending on the wrapper type (§2.2 domain
// stack).
type JSONHandler struct {
	q       queue
	fixed   bool
	isJSONB bool
}

func (h *JSONHandler) Examine(v interface{}) error {
	switch x := v.(type) {
	case JSONValue:
		h.fixed, h.isJSONB = true, false
		raw, err := json.Marshal(x.V)
		if err != nil {
			return usageErr(fmt.Errorf("marshal json parameter: %w", err))
		}
		h.q.push(raw)
	case JSONBValue:
		h.fixed, h.isJSONB = true, true
		raw, err := json.Marshal(x.V)
		if err != nil {
			return usageErr(fmt.Errorf("marshal jsonb parameter: %w", err))
		}
		payload := make([]byte, 1+len(raw))
		payload[0] = jsonbParamVersion
		copy(payload[1:], raw)
		h.q.push(payload)
	default:
		return usageErr(fmt.Errorf("%w: want param.JSONValue or param.JSONBValue, got %T", ErrUnsupportedValue, v))
	}
	return nil
}
func (h *JSONHandler) TotalSize() int                     { return h.q.size }
func (h *JSONHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }

func (h *JSONHandler) OID() oid.OID {
	if h.isJSONB {
		return oid.JSONB
	}
	return oid.JSON
}
func (h *JSONHandler) ArrayOID() oid.OID {
	if h.isJSONB {
		return oid.JSONBArray
	}
	return oid.JSONArray
}
func (h *JSONHandler) WireFormat() wire.Format { return wire.Binary }
func (h *JSONHandler) AllowsType(v interface{}) bool {
	switch v.(type) {
	case JSONValue:
		return !h.fixed || !h.isJSONB
	case JSONBValue:
		return !h.fixed || h.isJSONB
	default:
		return false
	}
}

func (h *JSONHandler) Items() [][]byte { return h.q.items }
