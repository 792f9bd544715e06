package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeFormat is the layout of persisted timestamps.
const TimeFormat = "2006-01-02 15:04:05"

// Time is a wall clock reading with second granularity, as written in the
// ledger. It carries no time zone: "2025-03-30 02:30:00" stays that label even
// where the local clock skipped that hour.
//
// The reading is held in a UTC time.Time, which has no gaps.
type Time struct {
	t time.Time
}

// At returns the wall clock reading of t in its own location, truncated to the second.
func At(t time.Time) Time {
	return Time{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// Time returns the reading as a time.Time in UTC.
func (t Time) Time() time.Time { return t.t }

// Date returns the day of t.
func (t Time) Date() Date { return New(t.t.Date()) }

// Equal reports whether t and u are the same reading.
func (t Time) Equal(u Time) bool { return t.t.Equal(u.t) }

// String formats t with TimeFormat.
func (t Time) String() string { return t.t.Format(TimeFormat) }

// ParseTime parses a timestamp in TimeFormat.
func ParseTime(str string) (Time, error) {
	t, err := time.Parse(TimeFormat, str)
	if err != nil {
		return Time{}, fmt.Errorf("invalid time %q want format %q: %w", str, TimeFormat, err)
	}
	return Time{t: t}, nil
}

// MustParseTime is like ParseTime but panics on error.
func MustParseTime(str string) Time {
	t, err := ParseTime(str)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func (t *Time) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseTime(str)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

var _ json.Marshaler = (*Time)(nil)
var _ json.Unmarshaler = (*Time)(nil)
