//go:build pgwire_fake

package dbapi_test

import (
	"context"
	"testing"

	"github.com/arjunveer/pgwire/dbapi"
	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/pq"
	"github.com/arjunveer/pgwire/wire"
)

func be32(v int32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func intColumn(name string) pq.ColumnMeta {
	return pq.ColumnMeta{Name: name, Type: oid.Int4, Format: wire.Binary}
}

func TestCursorFetchOneAndAll(t *testing.T) {
	script := []*pq.FakeResult{{
		Columns: []pq.ColumnMeta{intColumn("n")},
		Rows: []pq.FakeRow{
			{be32(1)}, {be32(2)}, {be32(3)},
		},
	}}
	cu := dbapi.NewCursor(pq.NewFakeConn(script), wire.NewRegistry())

	if err := cu.Execute(context.Background(), "select n from t"); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	row, err := cu.FetchOne()
	if err != nil {
		t.Fatalf("FetchOne: %v", err)
	}
	if row[0] != int32(1) {
		t.Errorf("row[0] = %v, want 1", row[0])
	}

	rest, err := cu.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(rest) != 2 || rest[0][0] != int32(2) || rest[1][0] != int32(3) {
		t.Errorf("rest = %v, want [[2] [3]]", rest)
	}

	if n, err := cu.FetchOne(); err != nil || n != nil {
		t.Errorf("FetchOne at end = (%v, %v), want (nil, nil)", n, err)
	}
}

func TestCursorScroll(t *testing.T) {
	script := []*pq.FakeResult{{
		Columns: []pq.ColumnMeta{intColumn("n")},
		Rows:    []pq.FakeRow{{be32(1)}, {be32(2)}, {be32(3)}},
	}}
	cu := dbapi.NewCursor(pq.NewFakeConn(script), wire.NewRegistry())
	if err := cu.Execute(context.Background(), "select n from t"); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if err := cu.Scroll(2, dbapi.Absolute); err != nil {
		t.Fatalf("Scroll absolute: %v", err)
	}
	if cu.RowNumber() != 2 {
		t.Errorf("RowNumber = %d, want 2", cu.RowNumber())
	}
	row, err := cu.FetchOne()
	if err != nil {
		t.Fatalf("FetchOne: %v", err)
	}
	if row[0] != int32(3) {
		t.Errorf("row[0] = %v, want 3", row[0])
	}

	if err := cu.Scroll(-1, dbapi.Relative); err != nil {
		t.Fatalf("Scroll relative: %v", err)
	}
	if cu.RowNumber() != 2 {
		t.Errorf("RowNumber after relative scroll = %d, want 2", cu.RowNumber())
	}

	if err := cu.Scroll(100, dbapi.Absolute); err == nil {
		t.Error("Scroll out of range: expected error, got nil")
	}
}

func TestCursorRowCountAndDescription(t *testing.T) {
	script := []*pq.FakeResult{{
		Columns:  []pq.ColumnMeta{intColumn("n")},
		Rows:     []pq.FakeRow{{be32(1)}},
		CmdCount: 1,
	}}
	cu := dbapi.NewCursor(pq.NewFakeConn(script), wire.NewRegistry())
	if err := cu.Execute(context.Background(), "select n from t"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := cu.RowCount(); got != 1 {
		t.Errorf("RowCount = %d, want 1", got)
	}
	desc := cu.Description()
	if len(desc) != 1 || desc[0].Name != "n" {
		t.Fatalf("Description = %+v", desc)
	}
}

func TestCursorCloseRejectsFurtherUse(t *testing.T) {
	cu := dbapi.NewCursor(pq.NewFakeConn(nil), wire.NewRegistry())
	cu.Close()
	if err := cu.Execute(context.Background(), "select 1"); err == nil {
		t.Error("Execute after Close: expected error, got nil")
	}
}

func TestCursorExecuteWithParameters(t *testing.T) {
	script := []*pq.FakeResult{{
		Columns: []pq.ColumnMeta{intColumn("echo")},
		Rows:    []pq.FakeRow{{be32(7)}},
	}}
	cu := dbapi.NewCursor(pq.NewFakeConn(script), wire.NewRegistry())
	if err := cu.Execute(context.Background(), "select $1::int4", int32(7)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	row, err := cu.FetchOne()
	if err != nil {
		t.Fatalf("FetchOne: %v", err)
	}
	if row[0] != int32(7) {
		t.Errorf("row[0] = %v, want 7", row[0])
	}
}
