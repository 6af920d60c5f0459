package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arjunveer/pgwire/oid"
	"github.com/google/uuid"
)

func readUUIDBin(c *Cursor) (interface{}, error) {
	raw, err := c.AdvanceBytes(16)
	if err != nil {
		return nil, err
	}
	var u uuid.UUID
	copy(u[:], raw)
	return u, nil
}

func readUUIDText(c *Cursor) (interface{}, error) {
	s, err := c.AdvanceText(c.Remaining())
	if err != nil {
		return nil, err
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, protoErr("uuid", err)
	}
	return u, nil
}

var errBadJSONB = errors.New("unsupported jsonb version")

// jsonbVersion is the single supported container version byte (§4.9,
// resolved against poque's read_jsonb_bin: reject anything else
// outright rather than attempting forward compatibility).
const jsonbVersion = 1

func readJSONBin(c *Cursor) (interface{}, error) {
	raw := c.AdvanceToEnd()
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, protoErr("json", err)
	}
	return v, nil
}

func readJSONBBin(c *Cursor) (interface{}, error) {
	version, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != jsonbVersion {
		return nil, protoErr("jsonb", fmt.Errorf("%w: %d", errBadJSONB, version))
	}
	raw := c.AdvanceToEnd()
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, protoErr("jsonb", err)
	}
	return v, nil
}

func registerVarious(r *Registry) {
	r.register(oid.UUID, readUUIDText, readUUIDBin)
	r.register(oid.JSON, readJSONText, readJSONBin)
	r.register(oid.JSONB, nil, readJSONBBin)
}

func readJSONText(c *Cursor) (interface{}, error) {
	raw, err := c.AdvanceText(c.Remaining())
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, protoErr("json", err)
	}
	return v, nil
}
