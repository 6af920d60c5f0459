package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
)

func decFromString(t *testing.T, s string) Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal.NewFromString(%q): %v", s, err)
	}
	return NewFromDecimal(d)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"-1",
		"1234.5678",
		"-1234.5678",
		"0.00001",
		"100000",
		"-1234.56700",
		"99999999999999999999.123456789",
	}
	for _, s := range cases {
		in := decFromString(t, s)
		raw, err := Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q): %v", s, err)
		}
		out, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode(%q): %v", s, err)
		}
		if !in.Value.Equal(out.Value) {
			t.Errorf("%q: round-trip mismatch: got %s, want %s", s, out.Value.String(), in.Value.String())
		}
		if out.DigitCount() < in.DigitCount() {
			t.Errorf("%q: digit count shrank: got %d, want >= %d", s, out.DigitCount(), in.DigitCount())
		}
	}
}

func TestEncodeZero(t *testing.T) {
	raw, err := Encode(decFromString(t, "0"))
	if err != nil {
		t.Fatalf("Encode(0): %v", err)
	}
	out, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !out.Value.IsZero() {
		t.Errorf("got %s, want 0", out.Value.String())
	}
}

func TestNaNRoundTrip(t *testing.T) {
	raw, err := Encode(NaNDecimal())
	if err != nil {
		t.Fatalf("Encode(NaN): %v", err)
	}
	out, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !out.NaN {
		t.Errorf("expected NaN, got %+v", out)
	}
}

func TestEncodeInfinityIsDataError(t *testing.T) {
	_, err := Encode(InfDecimal())
	if err == nil {
		t.Fatal("expected DataError for infinity, got nil")
	}
	var de *DataError
	if !asDataError(err, &de) {
		t.Fatalf("expected *DataError, got %T: %v", err, err)
	}
}

func asDataError(err error, target **DataError) bool {
	de, ok := err.(*DataError)
	if !ok {
		return false
	}
	*target = de
	return true
}

func TestDecodeRejectsShortHeader(t *testing.T) {
	if _, err := Decode([]byte{0, 1, 2}); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestDecodeRejectsInvalidSign(t *testing.T) {
	raw := make([]byte, 8)
	raw[4] = 0x12 // neither positive, negative, nor NaN
	if _, err := Decode(raw); err == nil {
		t.Fatal("expected error for invalid sign")
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, q, r int }{
		{7, 4, 1, 3},
		{-7, 4, -2, 1},
		{0, 4, 0, 0},
		{-1, 4, -1, 3},
	}
	for _, c := range cases {
		q, r := floorDiv(c.a, c.b)
		if q != c.q || r != c.r {
			t.Errorf("floorDiv(%d, %d) = (%d, %d), want (%d, %d)", c.a, c.b, q, r, c.q, c.r)
		}
	}
}
