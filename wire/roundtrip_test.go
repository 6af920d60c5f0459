package wire_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/param"
	"github.com/arjunveer/pgwire/wire"
)

// encode runs a host value through its parameter Handler and returns
// the raw wire bytes plus the OID it was encoded as.
func encode(t *testing.T, v interface{}) ([]byte, uint32) {
	t.Helper()
	h, err := param.For(v)
	if err != nil {
		t.Fatalf("param.For(%v): %v", v, err)
	}
	if err := h.Examine(v); err != nil {
		t.Fatalf("Examine(%v): %v", v, err)
	}
	buf := make([]byte, h.TotalSize())
	if _, err := h.EncodeInto(buf); err != nil {
		t.Fatalf("EncodeInto(%v): %v", v, err)
	}
	return buf, uint32(h.OID())
}

func decode(t *testing.T, reg *wire.Registry, oidVal uint32, raw []byte) interface{} {
	t.Helper()
	reader := reg.Binary(oid.OID(oidVal))
	if reader == nil {
		t.Fatalf("no binary reader for oid %d", oidVal)
	}
	c := wire.NewCursor(raw)
	v, err := reader(c)
	if err != nil {
		t.Fatalf("decode oid %d: %v", oidVal, err)
	}
	if err := c.EnforceAtEnd("test"); err != nil {
		t.Fatalf("decode oid %d: %v", oidVal, err)
	}
	return v
}

func TestScalarRoundTrip(t *testing.T) {
	reg := wire.NewRegistry()

	t.Run("bool", func(t *testing.T) {
		raw, oidVal := encode(t, true)
		got := decode(t, reg, oidVal, raw)
		if got != true {
			t.Errorf("got %v, want true", got)
		}
	})

	t.Run("int widens to int64", func(t *testing.T) {
		raw, oidVal := encode(t, int64(1)<<40)
		got := decode(t, reg, oidVal, raw)
		if got != int64(1)<<40 {
			t.Errorf("got %v, want %d", got, int64(1)<<40)
		}
	})

	t.Run("float64", func(t *testing.T) {
		raw, oidVal := encode(t, 3.5)
		got := decode(t, reg, oidVal, raw)
		if got != 3.5 {
			t.Errorf("got %v, want 3.5", got)
		}
	})

	t.Run("text", func(t *testing.T) {
		raw, oidVal := encode(t, "hello")
		got := decode(t, reg, oidVal, raw)
		if got != "hello" {
			t.Errorf("got %v, want hello", got)
		}
	})

	t.Run("bytea", func(t *testing.T) {
		want := []byte{1, 2, 3, 4}
		raw, oidVal := encode(t, want)
		got, ok := decode(t, reg, oidVal, raw).([]byte)
		if !ok || string(got) != string(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("uuid", func(t *testing.T) {
		want := uuid.New()
		raw, oidVal := encode(t, want)
		got := decode(t, reg, oidVal, raw)
		if got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("timestamp", func(t *testing.T) {
		want := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)
		raw, oidVal := encode(t, want)
		got, ok := decode(t, reg, oidVal, raw).(wire.TimestampValue)
		native, hasNative := got.Native()
		if !ok || !hasNative || !native.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestArrayRoundTrip(t *testing.T) {
	reg := wire.NewRegistry()

	t.Run("flat with null", func(t *testing.T) {
		v := []interface{}{int32(1), nil, int32(3)}
		raw, oidVal := encode(t, v)
		got, ok := decode(t, reg, oidVal, raw).([]interface{})
		if !ok || len(got) != 3 {
			t.Fatalf("got %#v", got)
		}
		if got[0] != int32(1) || got[1] != nil || got[2] != int32(3) {
			t.Errorf("got %#v, want [1 nil 3]", got)
		}
	})

	t.Run("nested", func(t *testing.T) {
		v := []interface{}{
			[]interface{}{int32(1), int32(2)},
			[]interface{}{int32(3), int32(4)},
		}
		raw, oidVal := encode(t, v)
		got, ok := decode(t, reg, oidVal, raw).([]interface{})
		if !ok || len(got) != 2 {
			t.Fatalf("got %#v", got)
		}
		row0, ok := got[0].([]interface{})
		if !ok || len(row0) != 2 || row0[0] != int32(1) || row0[1] != int32(2) {
			t.Errorf("got[0] = %#v, want [1 2]", got[0])
		}
	})

	t.Run("empty", func(t *testing.T) {
		v := []interface{}{}
		raw, oidVal := encode(t, v)
		got, ok := decode(t, reg, oidVal, raw).([]interface{})
		if !ok || len(got) != 0 {
			t.Errorf("got %#v, want empty slice", got)
		}
	})
}
