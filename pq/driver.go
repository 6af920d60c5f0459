// Package pq declares the interfaces the codec engine consumes from an
// external libpq-binding layer (§6.1): connection lifecycle, statement
// execution, and the per-result/per-cell metadata accessors that
// package result builds its Facade on top of. A new query protocol,
// connection pooling, and a real cgo libpq binding are out of scope —
// this package specifies the seam, and pq/fake.go provides an
// in-memory stand-in for tests.
package pq

import (
	"context"
	"fmt"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// PollStatus mirrors libpq's PGconn/PGresult polling states for
// asynchronous connection setup (§6.1).
type PollStatus int

const (
	Failed PollStatus = iota
	Reading
	Writing
	OK
	Active
)

func (s PollStatus) String() string {
	switch s {
	case Failed:
		return "failed"
	case Reading:
		return "reading"
	case Writing:
		return "writing"
	case OK:
		return "ok"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// InterfaceError reports a caller mistake against the driver surface
// itself: operating on a closed connection or cursor, an invalid
// scroll mode, or a scroll position out of range (§7, §9 "InterfaceError:
// libpq surface errors").
type InterfaceError struct {
	Err error
}

func (e *InterfaceError) Error() string { return "pgwire: interface error: " + e.Err.Error() }
func (e *InterfaceError) Unwrap() error { return e.Err }

// InterfaceErrorf builds an InterfaceError from a formatted message.
func InterfaceErrorf(format string, args ...interface{}) error {
	return &InterfaceError{Err: fmt.Errorf(format, args...)}
}

// ColumnMeta is the per-column metadata a Result exposes, mirroring
// PQftype/PQfformat/PQfmod/PQfsize/PQfname/PQftable/PQftablecol
// (§6.1).
type ColumnMeta struct {
	Name     string
	Type     oid.OID
	Format   wire.Format
	Mod      int32
	Size     int32
	Table    oid.OID
	TableCol int
}

// Result is the per-execute handle the driver hands back: row/column
// counts, per-column metadata, and per-cell accessors over raw wire
// bytes (§4.10, §6.1).
type Result interface {
	Status() PollStatus
	ErrorMessage() string

	NTuples() int
	NFields() int
	NParams() int

	Column(i int) ColumnMeta

	// GetValue returns the raw bytes for (row, col) exactly as the
	// server sent them, in the format reported by Column(col).Format.
	// The returned slice is only valid until the Result is cleared
	// (§3 Raw Value lifetime).
	GetValue(row, col int) []byte
	GetIsNull(row, col int) bool
	GetLength(row, col int) int

	// CmdTuples reports the server's reported affected-row count for
	// a non-SELECT command, or -1 if not applicable.
	CmdTuples() int

	Clear()
}

// Conn is the connection surface the codec engine consumes: execute
// with already-encoded parameter OIDs/values/lengths/formats, plus the
// async open/poll lifecycle (§6.1).
type Conn interface {
	Poll(ctx context.Context) (PollStatus, error)
	TransactionIdle() bool

	// Execute runs command with bind parameters already encoded by
	// package param: parallel OID/value/format slices, one entry per
	// parameter, plus the desired result format.
	Execute(ctx context.Context, command string, paramOIDs []oid.OID, paramValues [][]byte, paramFormats []wire.Format, resultFormat wire.Format) (Result, error)

	ErrorMessage() string
	Close() error
}
