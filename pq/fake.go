//go:build pgwire_fake

package pq

import (
	"context"
	"log/slog"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// FakeRow is one row of a FakeResult, given as the already wire-encoded
// binary bytes per column (nil meaning SQL NULL).
type FakeRow [][]byte

// FakeResult is an in-memory Result used by result/dbapi package tests
// to exercise the codec without a live server (§6.1 "minimal in-memory
// fake"). Unlike the teacher's pgdump_test.go pattern of skipping a
// test outright when a live fixture is unavailable, this fake gives
// full coverage instead, because the codec's correctness is this
// repo's core and must not depend on an external service being
// present.
type FakeResult struct {
	Columns  []ColumnMeta
	Rows     []FakeRow
	CmdCount int
}

func (r *FakeResult) Status() PollStatus      { return OK }
func (r *FakeResult) ErrorMessage() string    { return "" }
func (r *FakeResult) NTuples() int            { return len(r.Rows) }
func (r *FakeResult) NFields() int            { return len(r.Columns) }
func (r *FakeResult) NParams() int            { return 0 }
func (r *FakeResult) Column(i int) ColumnMeta { return r.Columns[i] }

func (r *FakeResult) GetValue(row, col int) []byte {
	return r.Rows[row][col]
}
func (r *FakeResult) GetIsNull(row, col int) bool {
	return r.Rows[row][col] == nil
}
func (r *FakeResult) GetLength(row, col int) int {
	return len(r.Rows[row][col])
}
func (r *FakeResult) CmdTuples() int { return r.CmdCount }
func (r *FakeResult) Clear()         {}

// FakeConn is a scripted Conn: each Execute call consumes the next
// entry of Script, in order, regardless of the command text passed.
type FakeConn struct {
	Script []*FakeResult
	next   int
	log    *slog.Logger
}

// NewFakeConn builds a FakeConn that returns script[i] from its i-th
// Execute call. Connection-lifecycle events are logged the way a real
// driver binding would, via log/slog (§2.1 ambient stack).
func NewFakeConn(script []*FakeResult) *FakeConn {
	return &FakeConn{Script: script, log: slog.Default().With("component", "pq.fake")}
}

func (c *FakeConn) Poll(ctx context.Context) (PollStatus, error) {
	c.log.Debug("poll", "status", OK)
	return OK, nil
}

func (c *FakeConn) TransactionIdle() bool { return true }

func (c *FakeConn) Execute(ctx context.Context, command string, paramOIDs []oid.OID, paramValues [][]byte, paramFormats []wire.Format, resultFormat wire.Format) (Result, error) {
	if c.next >= len(c.Script) {
		return nil, InterfaceErrorf("fake connection: no more scripted results (command %q)", command)
	}
	res := c.Script[c.next]
	c.next++
	c.log.Info("execute", "command", command, "nparams", len(paramOIDs), "rows", res.NTuples())
	return res, nil
}

func (c *FakeConn) ErrorMessage() string { return "" }
func (c *FakeConn) Close() error {
	c.log.Debug("close")
	return nil
}
