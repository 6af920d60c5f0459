//go:build pgwire_fake

package result_test

import (
	"testing"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/pq"
	"github.com/arjunveer/pgwire/result"
	"github.com/arjunveer/pgwire/wire"
)

func be32(v int32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func TestGetValueDecodesBinaryInt4(t *testing.T) {
	fr := &pq.FakeResult{
		Columns: []pq.ColumnMeta{{Name: "n", Type: oid.Int4, Format: wire.Binary}},
		Rows:    []pq.FakeRow{{be32(42)}},
	}
	res := result.New(fr, wire.NewRegistry())

	v, err := res.GetValue(0, 0)
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	n, ok := v.(int32)
	if !ok || n != 42 {
		t.Errorf("got %#v, want int32(42)", v)
	}
}

func TestGetValueNull(t *testing.T) {
	fr := &pq.FakeResult{
		Columns: []pq.ColumnMeta{{Name: "n", Type: oid.Int4, Format: wire.Binary}},
		Rows:    []pq.FakeRow{{nil}},
	}
	res := result.New(fr, wire.NewRegistry())

	v, err := res.GetValue(0, 0)
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if v != nil {
		t.Errorf("got %#v, want nil", v)
	}
}

func TestGetValueUnregisteredOIDFallsBackToRaw(t *testing.T) {
	raw := []byte{1, 2, 3}
	fr := &pq.FakeResult{
		Columns: []pq.ColumnMeta{{Name: "n", Type: oid.OID(999999), Format: wire.Binary}},
		Rows:    []pq.FakeRow{{raw}},
	}
	res := result.New(fr, wire.NewRegistry())

	v, err := res.GetValue(0, 0)
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	b, ok := v.([]byte)
	if !ok || string(b) != string(raw) {
		t.Errorf("got %#v, want %v", v, raw)
	}
	// the returned slice must not alias fr's backing array.
	b[0] = 0xff
	if fr.Rows[0][0][0] == 0xff {
		t.Errorf("GetValue aliased the underlying row bytes")
	}
}

func TestGetBytea(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	fr := &pq.FakeResult{
		Columns: []pq.ColumnMeta{{Name: "b", Type: oid.Bytea, Format: wire.Binary}},
		Rows:    []pq.FakeRow{{want}},
	}
	res := result.New(fr, wire.NewRegistry())

	got, err := res.GetBytea(0, 0)
	if err != nil {
		t.Fatalf("GetBytea: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
