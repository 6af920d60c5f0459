// Package result implements the Result Facade (§4.10): it wraps a
// pq.Result handle and dispatches getvalue to the wire package's Type
// Registry, constructing a Buffer Cursor over each cell's raw bytes
// and enforcing the cursor-at-end invariant on every decode.
package result

import (
	"bytes"
	"fmt"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/pq"
	"github.com/arjunveer/pgwire/wire"
)

// Result wraps a pq.Result, resolving cell values against a shared
// Type Registry (§4.10). A Result is only valid for the lifetime of
// the underlying pq.Result; Clear invalidates it.
type Result struct {
	res pq.Result
	reg *wire.Registry
}

// New wraps res, dispatching getvalue calls through reg.
func New(res pq.Result, reg *wire.Registry) *Result {
	return &Result{res: res, reg: reg}
}

func (r *Result) NTuples() int { return r.res.NTuples() }
func (r *Result) NFields() int { return r.res.NFields() }
func (r *Result) NParams() int { return r.res.NParams() }

func (r *Result) FType(col int) oid.OID      { return r.res.Column(col).Type }
func (r *Result) FFormat(col int) wire.Format { return r.res.Column(col).Format }
func (r *Result) FName(col int) string        { return r.res.Column(col).Name }
func (r *Result) FMod(col int) int32          { return r.res.Column(col).Mod }
func (r *Result) FSize(col int) int32         { return r.res.Column(col).Size }
func (r *Result) FTable(col int) oid.OID      { return r.res.Column(col).Table }
func (r *Result) FTableCol(col int) int       { return r.res.Column(col).TableCol }

func (r *Result) GetIsNull(row, col int) bool { return r.res.GetIsNull(row, col) }
func (r *Result) GetLength(row, col int) int  { return r.res.GetLength(row, col) }

// Clear invalidates r; no further method call on r is valid afterward
// (§3 Raw Value lifetime).
func (r *Result) Clear() { r.res.Clear() }

// GetValue runs the §4.10 dispatch algorithm: null check, OID lookup,
// format-specific reader selection, Buffer Cursor construction, reader
// invocation, at-end enforcement. The returned value never aliases
// the underlying pq.Result's borrowed memory past this call: decoded
// scalar/composite values copy what they need out of the cursor, and
// the raw fallback path (no registry entry, or an empty reader slot)
// hands back bytes.Clone(raw) rather than a view, since a getvalue
// caller has no narrower lifetime contract available than "valid
// after this call returns" (§9's "raw pointer lifetime" hazard).
func (r *Result) GetValue(row, col int) (interface{}, error) {
	if r.res.GetIsNull(row, col) {
		return nil, nil
	}

	meta := r.res.Column(col)
	raw := r.res.GetValue(row, col)

	if !r.reg.Lookup(meta.Type) {
		return bytes.Clone(raw), nil
	}

	var reader wire.Reader
	switch meta.Format {
	case wire.Binary:
		reader = r.reg.Binary(meta.Type)
	case wire.Text:
		reader = r.reg.Text(meta.Type)
	}
	if reader == nil {
		return bytes.Clone(raw), nil
	}

	c := wire.NewCursor(raw)
	val, err := reader(c)
	if err != nil {
		return nil, err
	}
	if err := c.EnforceAtEnd("getvalue"); err != nil {
		return nil, err
	}
	return val, nil
}

// GetBytea is GetValue narrowed to bytea columns, returning an owned
// copy explicitly so a caller retaining the result past the row's
// lifetime never has to reason about whether GetValue's generic
// return aliased borrowed memory.
func (r *Result) GetBytea(row, col int) ([]byte, error) {
	v, err := r.GetValue(row, col)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("pgwire: column %d is not bytea-shaped (got %T)", col, v)
	}
	return bytes.Clone(b), nil
}
