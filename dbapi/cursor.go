// Package dbapi implements the DB-API-style cursor surface exposed to
// callers on top of package result and package pq (§6.2), grounded on
// original_source/poque/ctypes/cursor.py's Cursor.
package dbapi

import (
	"context"
	"log/slog"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/param"
	"github.com/arjunveer/pgwire/pq"
	"github.com/arjunveer/pgwire/result"
	"github.com/arjunveer/pgwire/wire"
)

// ScrollMode selects how Scroll's value is interpreted.
type ScrollMode int

const (
	Relative ScrollMode = iota
	Absolute
)

// Column is one entry of a Cursor's Description: name, type, and the
// precision/scale pair poque's cursor.py derives from fmod for NUMERIC
// and fixed constants for FLOAT4/FLOAT8 (§6.2).
type Column struct {
	Name         string
	Type         oid.OID
	DisplaySize  *int
	InternalSize *int
	Precision    *int
	Scale        *int
	NullOK       *bool
}

// Row is one fetched row: one decoded host value per column, in
// column order.
type Row []interface{}

// Cursor is a single connection's statement/result iterator. It is
// not safe for concurrent use, mirroring libpq's per-connection
// threading model (§5).
type Cursor struct {
	conn pq.Conn
	reg  *wire.Registry
	log  *slog.Logger

	res *result.Result
	pos int

	// BytesOutputHex records the bytea_output text-mode convention
	// (§6.3): true for `\x` hex, false for the legacy escape format.
	// No decoding path reads it: the bytea text reader recognizes
	// either form from the `\x` prefix of each value.
	BytesOutputHex bool

	closed bool
}

// NewCursor builds a Cursor bound to conn, decoding results against
// reg.
func NewCursor(conn pq.Conn, reg *wire.Registry) *Cursor {
	return &Cursor{conn: conn, reg: reg, log: slog.Default().With("component", "dbapi.cursor"), BytesOutputHex: true}
}

func (cu *Cursor) checkClosed() error {
	if cu.closed {
		return pq.InterfaceErrorf("cursor is closed")
	}
	return nil
}

// Execute examines and encodes parameters via package param, then
// submits command through the driver connection, replacing any
// previous result (§6.2).
func (cu *Cursor) Execute(ctx context.Context, command string, parameters ...interface{}) error {
	if err := cu.checkClosed(); err != nil {
		return err
	}
	cu.log.Debug("execute", "command", command, "autocommit_pending", cu.conn.TransactionIdle())

	oids := make([]oid.OID, len(parameters))
	values := make([][]byte, len(parameters))
	formats := make([]wire.Format, len(parameters))

	for i, p := range parameters {
		h, err := param.For(p)
		if err != nil {
			return err
		}
		if err := h.Examine(p); err != nil {
			return err
		}
		buf := make([]byte, h.TotalSize())
		if _, err := h.EncodeInto(buf); err != nil {
			return err
		}
		oids[i] = h.OID()
		values[i] = buf
		formats[i] = h.WireFormat()
	}

	res, err := cu.conn.Execute(ctx, command, oids, values, formats, wire.Binary)
	if err != nil {
		cu.log.Error("execute failed", "command", command, "error", err)
		return err
	}
	cu.res = result.New(res, cu.reg)
	cu.pos = 0
	return nil
}

// ExecuteMany runs command once per entry of seq, discarding all but
// the side effects — matching poque's executemany, which drops the
// final Result (§6.2).
func (cu *Cursor) ExecuteMany(ctx context.Context, command string, seq [][]interface{}) error {
	for _, parameters := range seq {
		if err := cu.Execute(ctx, command, parameters...); err != nil {
			return err
		}
	}
	cu.res = nil
	return nil
}

func (cu *Cursor) checkFetch() error {
	if cu.res == nil {
		return pq.InterfaceErrorf("invalid cursor state: no result")
	}
	if cu.res.NFields() == 0 {
		return pq.InterfaceErrorf("no result set")
	}
	return nil
}

func (cu *Cursor) rowAt(pos int) (Row, error) {
	n := cu.res.NFields()
	row := make(Row, n)
	for col := 0; col < n; col++ {
		v, err := cu.res.GetValue(pos, col)
		if err != nil {
			return nil, err
		}
		row[col] = v
	}
	return row, nil
}

// FetchOne returns the next row, or (nil, nil) if no more rows remain
// (§6.2).
func (cu *Cursor) FetchOne() (Row, error) {
	if err := cu.checkFetch(); err != nil {
		return nil, err
	}
	if cu.pos >= cu.res.NTuples() {
		return nil, nil
	}
	row, err := cu.rowAt(cu.pos)
	if err != nil {
		return nil, err
	}
	cu.pos++
	return row, nil
}

// FetchMany returns up to n rows starting from the current position.
func (cu *Cursor) FetchMany(n int) ([]Row, error) {
	if err := cu.checkFetch(); err != nil {
		return nil, err
	}
	end := cu.pos + n
	if end > cu.res.NTuples() {
		end = cu.res.NTuples()
	}
	return cu.fetchRange(end)
}

// FetchAll returns every remaining row.
func (cu *Cursor) FetchAll() ([]Row, error) {
	if err := cu.checkFetch(); err != nil {
		return nil, err
	}
	return cu.fetchRange(cu.res.NTuples())
}

func (cu *Cursor) fetchRange(end int) ([]Row, error) {
	rows := make([]Row, 0, end-cu.pos)
	for cu.pos < end {
		row, err := cu.rowAt(cu.pos)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		cu.pos++
	}
	return rows, nil
}

// RowNumber reports the current fetch position, or -1 if there is no
// active result set.
func (cu *Cursor) RowNumber() int {
	if cu.res == nil || cu.res.NFields() == 0 {
		return -1
	}
	return cu.pos
}

// RowCount reports the active result's ntuples, or -1 with no active
// result (§6.2). The server's affected-row count for a non-SELECT
// command (pq.Result.CmdTuples) is not consulted.
func (cu *Cursor) RowCount() int {
	if cu.res == nil {
		return -1
	}
	return cu.res.NTuples()
}

// Scroll repositions the fetch cursor. Out-of-range positions fail
// with an InterfaceError, matching poque's "weird one... should be an
// IndexError" scroll behavior (§6.2, invariant: index-error kind).
func (cu *Cursor) Scroll(value int, mode ScrollMode) error {
	if cu.res == nil || cu.res.NFields() == 0 {
		return pq.InterfaceErrorf("no result set")
	}
	var pos int
	switch mode {
	case Relative:
		pos = cu.pos + value
	case Absolute:
		pos = value
	default:
		return pq.InterfaceErrorf("invalid scroll mode")
	}
	if pos < 0 || pos > cu.res.NTuples() {
		return pq.InterfaceErrorf("scroll position out of range")
	}
	cu.pos = pos
	return nil
}

// Description reports per-column metadata, computing NUMERIC/FLOAT
// precision and scale per §6.2, grounded on
// original_source/poque/ctypes/cursor.py's description property.
func (cu *Cursor) Description() []Column {
	if cu.res == nil {
		return nil
	}
	n := cu.res.NFields()
	out := make([]Column, n)
	for i := 0; i < n; i++ {
		col := Column{Name: cu.res.FName(i), Type: cu.res.FType(i)}
		if sz := int(cu.res.FSize(i)); sz != -1 {
			v := sz
			col.InternalSize = &v
		}
		switch col.Type {
		case oid.Numeric:
			mod := int(cu.res.FMod(i)) - 4
			if mod >= 0 {
				precision := mod / 0xffff
				scale := mod & 0xffff
				col.Precision, col.Scale = &precision, &scale
			}
		case oid.Float8:
			precision := 53
			col.Precision = &precision
		case oid.Float4:
			precision := 24
			col.Precision = &precision
		}
		out[i] = col
	}
	return out
}

// Close marks the cursor closed and drops its reference to the current
// result; it does not close the underlying connection (§6.2, poque's
// Cursor.close: "not actually closing anything, just removing
// references").
func (cu *Cursor) Close() {
	cu.closed = true
	cu.res = nil
}
