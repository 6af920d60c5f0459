package param

import (
	"math/big"
	"testing"

	"github.com/arjunveer/pgwire/oid"
)

func TestIntHandlerStartsAtI32(t *testing.T) {
	h := &IntHandler{}
	if err := h.Examine(int16(5)); err != nil {
		t.Fatalf("Examine: %v", err)
	}
	if h.OID() != oid.Int4 {
		t.Errorf("OID = %s, want int4", oid.Name(h.OID()))
	}
	if h.TotalSize() != 4 {
		t.Errorf("TotalSize = %d, want 4", h.TotalSize())
	}
}

func TestIntHandlerWidensToI64(t *testing.T) {
	h := &IntHandler{}
	if err := h.Examine(int64(1) << 40); err != nil {
		t.Fatalf("Examine: %v", err)
	}
	if h.OID() != oid.Int8 {
		t.Errorf("OID = %s, want int8", oid.Name(h.OID()))
	}
	if h.TotalSize() != 8 {
		t.Errorf("TotalSize = %d, want 8", h.TotalSize())
	}
}

func TestIntHandlerWidensToTextOnOverflow(t *testing.T) {
	h := &IntHandler{}
	huge, ok := new(big.Int).SetString("17000000000000000000", 10)
	if !ok {
		t.Fatal("SetString failed")
	}
	if err := h.Examine(huge); err != nil {
		t.Fatalf("Examine: %v", err)
	}
	if h.OID() != oid.Text {
		t.Errorf("OID = %s, want text", oid.Name(h.OID()))
	}
}

func TestIntHandlerRebuildsEarlierValuesOnWiden(t *testing.T) {
	h := &IntHandler{}
	if err := h.Examine(int32(3)); err != nil {
		t.Fatalf("Examine(3): %v", err)
	}
	if h.OID() != oid.Int4 {
		t.Fatalf("after first value: OID = %s, want int4", oid.Name(h.OID()))
	}
	if err := h.Examine(int64(1) << 40); err != nil {
		t.Fatalf("Examine(huge): %v", err)
	}
	if h.OID() != oid.Int8 {
		t.Fatalf("after widen: OID = %s, want int8", oid.Name(h.OID()))
	}
	if len(h.Items()) != 2 {
		t.Fatalf("Items() len = %d, want 2 (first value re-rendered at new width)", len(h.Items()))
	}
	for _, item := range h.Items() {
		if len(item) != 8 {
			t.Errorf("item length = %d, want 8 (every value re-rendered at widened width)", len(item))
		}
	}
}

func TestIntHandlerNeverNarrows(t *testing.T) {
	h := &IntHandler{}
	if err := h.Examine(int64(1) << 40); err != nil {
		t.Fatalf("Examine(huge): %v", err)
	}
	if err := h.Examine(int16(1)); err != nil {
		t.Fatalf("Examine(1): %v", err)
	}
	if h.OID() != oid.Int8 {
		t.Errorf("OID = %s, want int8 (must not narrow back)", oid.Name(h.OID()))
	}
}
