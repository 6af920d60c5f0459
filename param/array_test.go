package param

import (
	"errors"
	"testing"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

func examine(t *testing.T, v interface{}) *ArrayHandler {
	t.Helper()
	h := &ArrayHandler{}
	if err := h.Examine(v); err != nil {
		t.Fatalf("Examine(%v): %v", v, err)
	}
	return h
}

func TestArrayFlatInt(t *testing.T) {
	h := examine(t, []interface{}{int16(1), int16(2), int16(3)})
	if h.OID() != oid.Int4Array {
		t.Errorf("OID = %s, want int4array", oid.Name(h.OID()))
	}
	if len(h.dims) != 1 || h.dims[0] != 3 {
		t.Errorf("dims = %v, want [3]", h.dims)
	}
	if h.TotalSize() <= 0 {
		t.Errorf("TotalSize = %d, want > 0", h.TotalSize())
	}
}

func TestArrayNested(t *testing.T) {
	v := []interface{}{
		[]interface{}{int16(1), int16(2)},
		[]interface{}{int16(3), int16(4)},
	}
	h := examine(t, v)
	if len(h.dims) != 2 || h.dims[0] != 2 || h.dims[1] != 2 {
		t.Errorf("dims = %v, want [2 2]", h.dims)
	}
}

func TestArrayWithNulls(t *testing.T) {
	v := []interface{}{int16(1), nil, int16(3)}
	h := examine(t, v)
	buf := make([]byte, h.TotalSize())
	if _, err := h.EncodeInto(buf); err != nil {
		t.Fatalf("EncodeInto: %v", err)
	}
	// hasNulls flag lives right after ndim at offset 4.
	hasNulls := int32(buf[4])<<24 | int32(buf[5])<<16 | int32(buf[6])<<8 | int32(buf[7])
	if hasNulls != 1 {
		t.Errorf("hasNulls = %d, want 1", hasNulls)
	}
}

func TestArrayEmptyFallsBackToText(t *testing.T) {
	h := examine(t, []interface{}{})
	if h.OID() != oid.TextArray {
		t.Errorf("OID = %s, want textarray", oid.Name(h.OID()))
	}
	if len(h.dims) != 1 || h.dims[0] != 0 {
		t.Errorf("dims = %v, want [0]", h.dims)
	}
}

func TestArrayMixedTypesRejected(t *testing.T) {
	h := &ArrayHandler{}
	err := h.Examine([]interface{}{int16(1), "two"})
	if !errors.Is(err, ErrMixedTypes) {
		t.Fatalf("got %v, want ErrMixedTypes", err)
	}
}

func TestArrayInconsistentSiblingLengthRejected(t *testing.T) {
	h := &ArrayHandler{}
	err := h.Examine([]interface{}{
		[]interface{}{int16(1), int16(2)},
		[]interface{}{int16(3)},
	})
	if !errors.Is(err, ErrInconsistentSize) {
		t.Fatalf("got %v, want ErrInconsistentSize", err)
	}
}

func TestArrayMixedListAndLeafRejected(t *testing.T) {
	cases := [][]interface{}{
		{[]interface{}{int16(1), int16(2)}, int16(3)},
		{int16(1), []interface{}{int16(2), int16(3)}},
	}
	for _, v := range cases {
		h := &ArrayHandler{}
		if err := h.Examine(v); err == nil {
			t.Errorf("Examine(%v): expected error, got nil", v)
		}
	}
}

func TestArrayTooManyDimensionsRejected(t *testing.T) {
	var v interface{} = int16(1)
	for i := 0; i < 7; i++ {
		v = []interface{}{v}
	}
	h := &ArrayHandler{}
	err := h.Examine(v)
	if !errors.Is(err, ErrTooManyDimensions) {
		t.Fatalf("got %v, want ErrTooManyDimensions", err)
	}
}

func TestArrayOfArraysHasNoDistinctArrayOID(t *testing.T) {
	h := examine(t, []interface{}{int16(1), int16(2)})
	if h.OID() != h.ArrayOID() {
		t.Errorf("OID() = %s, ArrayOID() = %s, want equal", oid.Name(h.OID()), oid.Name(h.ArrayOID()))
	}
}

func TestArrayWireFormatIsBinary(t *testing.T) {
	h := examine(t, []interface{}{int16(1)})
	if h.WireFormat() != wire.Binary {
		t.Errorf("WireFormat = %v, want Binary", h.WireFormat())
	}
}
