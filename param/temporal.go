package param

import (
	"fmt"
	"time"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

// Date wraps a host date value, distinguishing a date-only parameter
// from a full timestamp (§3 scalar host values). Only the calendar
// date component of t is used.
type Date time.Time

// NaiveTimestamp wraps a host timestamp with no associated time zone,
// distinguishing it from an aware time.Time so the array handler can
// reject mixing the two in one array (§7 UsageError, §9 design
// notes).
type NaiveTimestamp time.Time

// DateHandler encodes Date values, fixed at DATE (no widening).
type DateHandler struct{ q queue }

func (h *DateHandler) Examine(v interface{}) error {
	d, ok := v.(Date)
	if !ok {
		return usageErr(fmt.Errorf("%w: want param.Date, got %T", ErrUnsupportedValue, v))
	}
	var buf [4]byte
	putInt32(buf[:], wire.EncodeDate(time.Time(d)))
	h.q.push(buf[:])
	return nil
}
func (h *DateHandler) TotalSize() int                     { return h.q.size }
func (h *DateHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *DateHandler) OID() oid.OID                       { return oid.Date }
func (h *DateHandler) ArrayOID() oid.OID                  { return oid.DateArray }
func (h *DateHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *DateHandler) AllowsType(v interface{}) bool       { _, ok := v.(Date); return ok }

// DateTimeHandler encodes timestamp-shaped values. The first Examine
// call fixes whether the parameter is naive (param.NaiveTimestamp,
// targeting TIMESTAMP) or aware (time.Time, targeting TIMESTAMPTZ);
// every later value must agree, or Examine fails with a UsageError
// (§7, §9 "mixing naive and aware timestamps").
type DateTimeHandler struct {
	fixed bool
	aware bool
	q     queue
}

func (h *DateTimeHandler) Examine(v interface{}) error {
	var t time.Time
	var aware bool
	switch x := v.(type) {
	case time.Time:
		t, aware = x, true
	case NaiveTimestamp:
		t, aware = time.Time(x), false
	default:
		return usageErr(fmt.Errorf("%w: want time.Time or param.NaiveTimestamp, got %T", ErrUnsupportedValue, v))
	}
	if !h.fixed {
		h.fixed, h.aware = true, aware
	} else if h.aware != aware {
		return usageErr(ErrMixedNaiveAware)
	}
	var buf [8]byte
	us := wire.EncodeTimestamp(t)
	u := uint64(us)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (56 - 8*i))
	}
	h.q.push(buf[:])
	return nil
}
func (h *DateTimeHandler) TotalSize() int                     { return h.q.size }
func (h *DateTimeHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }

func (h *DateTimeHandler) OID() oid.OID {
	if h.fixed && !h.aware {
		return oid.Timestamp
	}
	return oid.TimestampTZ
}

func (h *DateTimeHandler) ArrayOID() oid.OID {
	if h.fixed && !h.aware {
		return oid.TimestampArray
	}
	return oid.TimestampTZArray
}

func (h *DateTimeHandler) WireFormat() wire.Format { return wire.Binary }

func (h *DateTimeHandler) AllowsType(v interface{}) bool {
	switch v.(type) {
	case time.Time:
		return !h.fixed || h.aware
	case NaiveTimestamp:
		return !h.fixed || !h.aware
	default:
		return false
	}
}

// TimeHandler encodes wire.TimeOfDay (naive TIME) or wire.TimeTZValue
// (aware TIMETZ) values, with the same fix-on-first-value, reject-on-
// mismatch rule as DateTimeHandler.
type TimeHandler struct {
	fixed bool
	aware bool
	q     queue
}

func (h *TimeHandler) Examine(v interface{}) error {
	switch x := v.(type) {
	case wire.TimeOfDay:
		if !h.fixed {
			h.fixed, h.aware = true, false
		} else if h.aware {
			return usageErr(ErrMixedNaiveAware)
		}
		var buf [8]byte
		putUint64(buf[:], uint64(x.Micros()))
		h.q.push(buf[:])
	case wire.TimeTZValue:
		if !h.fixed {
			h.fixed, h.aware = true, true
		} else if !h.aware {
			return usageErr(ErrMixedNaiveAware)
		}
		var buf [12]byte
		putUint64(buf[0:8], uint64(x.TimeOfDay.Micros()))
		putInt32(buf[8:12], -int32(x.OffsetSeconds))
		h.q.push(buf[:])
	default:
		return usageErr(fmt.Errorf("%w: want wire.TimeOfDay or wire.TimeTZValue, got %T", ErrUnsupportedValue, v))
	}
	return nil
}
func (h *TimeHandler) TotalSize() int                     { return h.q.size }
func (h *TimeHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }

func (h *TimeHandler) OID() oid.OID {
	if h.fixed && h.aware {
		return oid.TimeTZ
	}
	return oid.Time
}

func (h *TimeHandler) ArrayOID() oid.OID {
	if h.fixed && h.aware {
		return oid.TimeTZArray
	}
	return oid.TimeArray
}

func (h *TimeHandler) WireFormat() wire.Format { return wire.Binary }

func (h *TimeHandler) AllowsType(v interface{}) bool {
	switch v.(type) {
	case wire.TimeOfDay:
		return !h.fixed || !h.aware
	case wire.TimeTZValue:
		return !h.fixed || h.aware
	default:
		return false
	}
}

// IntervalHandler encodes wire.IntervalValue values, matching the
// wire's (microseconds, days, months) field order exactly (§4.5).
type IntervalHandler struct{ q queue }

func (h *IntervalHandler) Examine(v interface{}) error {
	iv, ok := v.(wire.IntervalValue)
	if !ok {
		return usageErr(fmt.Errorf("%w: want wire.IntervalValue, got %T", ErrUnsupportedValue, v))
	}
	var buf [16]byte
	putUint64(buf[0:8], uint64(iv.Microseconds))
	putInt32(buf[8:12], iv.Days)
	putInt32(buf[12:16], iv.Months)
	h.q.push(buf[:])
	return nil
}
func (h *IntervalHandler) TotalSize() int                     { return h.q.size }
func (h *IntervalHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *IntervalHandler) OID() oid.OID                       { return oid.Interval }
func (h *IntervalHandler) ArrayOID() oid.OID                  { return oid.IntervalArray }
func (h *IntervalHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *IntervalHandler) AllowsType(v interface{}) bool {
	_, ok := v.(wire.IntervalValue)
	return ok
}

func putUint64(buf []byte, u uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (56 - 8*i))
	}
}

func (h *DateHandler) Items() [][]byte { return h.q.items }
func (h *DateTimeHandler) Items() [][]byte { return h.q.items }
func (h *TimeHandler) Items() [][]byte { return h.q.items }
func (h *IntervalHandler) Items() [][]byte { return h.q.items }
