// Package pgwire implements a PostgreSQL binary wire protocol codec:
// decoding result values read off the wire (package wire) and encoding
// bind parameters to send on it (package param), backed by a closed
// catalog of type OIDs (package oid) and an NBASE-10000 decimal codec
// (package numeric). Packages pq, result, and dbapi layer a
// driver-agnostic cursor surface on top, grounded on poque's ctypes
// bindings (see original_source/ in the development tree).
//
// The codec itself has no network or driver dependency: package pq
// declares the seam an external libpq binding fills in, and
// package dbapi's Cursor is the caller-facing surface built on it.
package pgwire
