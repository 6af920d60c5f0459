package wire

import "errors"

// ErrLengthExceeded is wrapped in the ProtocolError returned by a
// Cursor advance that would read past the end of the underlying byte
// region.
var ErrLengthExceeded = errors.New("pgwire: data length exceeded")

// ErrNotAtEnd is returned when a reader leaves unread bytes in a
// Cursor it was handed; every value-level read site enforces this.
var ErrNotAtEnd = errors.New("pgwire: invalid data format, cursor not at end")

// ProtocolError reports malformed wire data: a length that exceeds
// the buffer, an unexpected array element OID, too many array
// dimensions, invalid array flags, a numeric sign out of range, an
// unsupported jsonb version byte, an invalid bit character, or
// invalid UTF-8.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	if e.Op == "" {
		return "pgwire: protocol error: " + e.Err.Error()
	}
	return "pgwire: protocol error in " + e.Op + ": " + e.Err.Error()
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func protoErr(op string, err error) error {
	return &ProtocolError{Op: op, Err: err}
}

var errInvalidUTF8 = errors.New("invalid UTF-8")
