package wire

import (
	"errors"
	"time"

	"github.com/arjunveer/pgwire/oid"
)

// pgEpoch is PostgreSQL's date/timestamp origin, 2000-01-01 (§4.5).
var pgEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	usecPerSec    = 1_000_000
	usecPerMinute = 60 * usecPerSec
	usecPerHour   = 60 * usecPerMinute
	usecPerDay    = 24 * usecPerHour
)

// Sentinels used by both date and timestamp (§4.5).
const (
	dateInfinity    = int32(0x7FFFFFFF)
	dateNegInfinity = int32(-0x80000000)
	tsInfinity      = int64(0x7FFFFFFFFFFFFFFF)
	tsNegInfinity   = int64(-0x8000000000000000)
)

// DateValue represents a decoded date. Go's time.Time is proleptic
// Gregorian over a far wider range than PostgreSQL's date type (which
// spans roughly 4713 BC to 5874897 AD, itself bounded by the wire's
// int32 day count), so Native covers every ordinary date; Text only
// ever holds "infinity"/"-infinity" for the two sentinel day values —
// unlike poque's Python date object (bounded to years 1-9999), Go
// never needs a generic out-of-range textual fallback here. The sum
// type is kept for API symmetry with Timestamp, where it is load
// bearing (§9 design notes).
type DateValue struct {
	native time.Time
	isText bool
	text   string
}

// Native returns the decoded date and true, or the zero time and
// false if this value is a textual sentinel.
func (d DateValue) Native() (time.Time, bool) { return d.native, !d.isText }

// Text returns the textual form ("infinity"/"-infinity") and true, or
// "" and false if this value decoded to a native date.
func (d DateValue) Text() (string, bool) { return d.text, d.isText }

func dateFromOrdinal(jd int32) DateValue {
	switch jd {
	case dateInfinity:
		return DateValue{isText: true, text: "infinity"}
	case dateNegInfinity:
		return DateValue{isText: true, text: "-infinity"}
	}
	return DateValue{native: pgEpoch.AddDate(0, 0, int(jd))}
}

// dateOrdinal returns the number of calendar days between pgEpoch and
// t's date. It goes through Time.Unix (seconds since 1970, unaffected
// by time.Duration's roughly +/-292-year range) rather than
// t.Sub(pgEpoch), which would saturate for dates far from 2000-01-01
// and silently corrupt the wire day count.
func dateOrdinal(t time.Time) int32 {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := (t.Unix() - pgEpoch.Unix()) / 86400
	return int32(days)
}

// EncodeDate converts a host date into PostgreSQL's day-since-epoch
// wire representation, the encode-side inverse of the date reader
// (used by the param package).
func EncodeDate(t time.Time) int32 { return dateOrdinal(t) }

// EncodeTimestamp converts a host time into PostgreSQL's
// microsecond-since-epoch wire representation, the encode-side
// inverse of the timestamp reader (used by the param package).
func EncodeTimestamp(t time.Time) int64 { return timestampMicros(t) }

func readDateBin(c *Cursor) (interface{}, error) {
	jd, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	return dateFromOrdinal(jd), nil
}

// TimeOfDay is a time-of-day with microsecond resolution, independent
// of any date (§3 scalar host values).
type TimeOfDay struct {
	Hour, Minute, Second, Microsecond int
}

var errBadTime = errors.New("invalid time value")

func timeOfDayFromMicros(us int64) (TimeOfDay, error) {
	if us < 0 {
		return TimeOfDay{}, errBadTime
	}
	hour := us / usecPerHour
	if hour > 23 {
		return TimeOfDay{}, errBadTime
	}
	rem := us % usecPerHour
	minute := rem / usecPerMinute
	rem %= usecPerMinute
	second := rem / usecPerSec
	micro := rem % usecPerSec
	return TimeOfDay{Hour: int(hour), Minute: int(minute), Second: int(second), Microsecond: int(micro)}, nil
}

func (t TimeOfDay) micros() int64 {
	return int64(t.Hour)*usecPerHour + int64(t.Minute)*usecPerMinute + int64(t.Second)*usecPerSec + int64(t.Microsecond)
}

// Micros returns the time-of-day as a microsecond count since
// midnight, PostgreSQL's wire representation for TIME (used by the
// param package's encode side).
func (t TimeOfDay) Micros() int64 { return t.micros() }

func readTimeBin(c *Cursor) (interface{}, error) {
	us, err := c.ReadInt64()
	if err != nil {
		return nil, err
	}
	tod, err := timeOfDayFromMicros(us)
	if err != nil {
		return nil, protoErr("time", err)
	}
	return tod, nil
}

// TimeTZValue is a time-of-day plus a fixed UTC offset in seconds.
type TimeTZValue struct {
	TimeOfDay
	OffsetSeconds int
}

func readTimeTZBin(c *Cursor) (interface{}, error) {
	us, err := c.ReadInt64()
	if err != nil {
		return nil, err
	}
	tzSecs, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	tod, err := timeOfDayFromMicros(us)
	if err != nil {
		return nil, protoErr("timetz", err)
	}
	// The wire's offset sign is inverted relative to POSIX (§4.5, §9).
	return TimeTZValue{TimeOfDay: tod, OffsetSeconds: -int(tzSecs)}, nil
}

// TimestampValue mirrors DateValue for the timestamp/timestamptz
// types: Native covers ordinary values, Text covers only the two
// infinity sentinels (§4.5).
type TimestampValue struct {
	native time.Time
	isText bool
	text   string
}

func (t TimestampValue) Native() (time.Time, bool) { return t.native, !t.isText }
func (t TimestampValue) Text() (string, bool)      { return t.text, t.isText }

func timestampFromMicros(v int64) (TimestampValue, error) {
	switch v {
	case tsInfinity:
		return TimestampValue{isText: true, text: "infinity"}, nil
	case tsNegInfinity:
		return TimestampValue{isText: true, text: "-infinity"}, nil
	}
	days, rem := floorDivInt64(v, usecPerDay)
	tod, err := timeOfDayFromMicros(rem)
	if err != nil {
		return TimestampValue{}, err
	}
	date := pgEpoch.AddDate(0, 0, int(days))
	native := time.Date(date.Year(), date.Month(), date.Day(), tod.Hour, tod.Minute, tod.Second, tod.Microsecond*1000, time.UTC)
	return TimestampValue{native: native}, nil
}

func timestampMicros(t time.Time) int64 {
	t = t.UTC()
	days := dateOrdinal(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	tod := TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Microsecond: t.Nanosecond() / 1000}
	return int64(days)*usecPerDay + tod.micros()
}

func readTimestampBin(c *Cursor) (interface{}, error) {
	us, err := c.ReadInt64()
	if err != nil {
		return nil, err
	}
	ts, err := timestampFromMicros(us)
	if err != nil {
		return nil, protoErr("timestamp", err)
	}
	return ts, nil
}

func readTimestampTZBin(c *Cursor) (interface{}, error) {
	v, err := readTimestampBin(c)
	if err != nil {
		return nil, err
	}
	ts := v.(TimestampValue)
	if native, ok := ts.Native(); ok {
		ts.native = native.In(time.UTC)
	}
	return ts, nil
}

// IntervalValue is months + days + microseconds, matching the wire
// layout exactly rather than collapsing to a single duration (months
// are not a fixed number of days).
type IntervalValue struct {
	Months       int32
	Days         int32
	Microseconds int64
}

// Duration aggregates the days and microseconds parts into a
// time.Duration, per §4.5 ("returned as (months, duration) where
// duration aggregates days and microseconds").
func (iv IntervalValue) Duration() time.Duration {
	return time.Duration(iv.Days)*24*time.Hour + time.Duration(iv.Microseconds)*time.Microsecond
}

func readIntervalBin(c *Cursor) (interface{}, error) {
	us, err := c.ReadInt64()
	if err != nil {
		return nil, err
	}
	days, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	months, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	return IntervalValue{Months: months, Days: days, Microseconds: us}, nil
}

// legacy abstime/reltime/tinterval (§4.2, §GLOSSARY).
func readAbstimeBin(c *Cursor) (interface{}, error) {
	secs, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}

func readReltimeBin(c *Cursor) (interface{}, error) {
	secs, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	return time.Duration(secs) * time.Second, nil
}

const invalidAbstime = int32(0x7FFFFFFE)

var errBadTinterval = errors.New("invalid tinterval status")

// TintervalValue is the legacy (status, abstime, abstime) triple.
type TintervalValue struct {
	Start, Finish time.Time
	Valid         bool
}

func readTintervalBin(c *Cursor) (interface{}, error) {
	status, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	t1, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	t2, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	// status=1 iff both endpoints are valid abstimes (§9 open question,
	// resolved against poque's read_tinterval_bin).
	valid := t1 != invalidAbstime && t2 != invalidAbstime
	wantStatus := int32(0)
	if valid {
		wantStatus = 1
	}
	if status != wantStatus {
		return nil, protoErr("tinterval", errBadTinterval)
	}
	return TintervalValue{
		Start:  time.Unix(int64(t1), 0).UTC(),
		Finish: time.Unix(int64(t2), 0).UTC(),
		Valid:  valid,
	}, nil
}

func floorDivInt64(a, b int64) (int64, int64) {
	q := a / b
	r := a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

func registerTemporal(r *Registry) {
	r.register(oid.Date, nil, readDateBin)
	r.register(oid.Time, nil, readTimeBin)
	r.register(oid.TimeTZ, nil, readTimeTZBin)
	r.register(oid.Timestamp, nil, readTimestampBin)
	r.register(oid.TimestampTZ, nil, readTimestampTZBin)
	r.register(oid.Interval, nil, readIntervalBin)
	r.register(oid.Abstime, nil, readAbstimeBin)
	r.register(oid.Reltime, nil, readReltimeBin)
	r.register(oid.Tinterval, nil, readTintervalBin)
}
