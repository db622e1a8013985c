package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// Used for slot times to avoid dragging time zones into slot arithmetic.
type TimeString string

const timeStringLayout = "15:04"

var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the "HH:MM" format (00-23 hours, 00-59 minutes).
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" value.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by m minutes.
// The result wraps around midnight, matching clock arithmetic.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total = (total + m) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare lexicographically, which matches "HH:MM" ordering
// for all valid inputs anyway.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer so TimeString can be written directly.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as strings
// like "08:00:00"; the seconds part is dropped.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = truncateSeconds(v)
		return nil
	case []byte:
		*t = truncateSeconds(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types.TimeString: cannot scan %T", src)
	}
}

func truncateSeconds(s string) TimeString {
	if len(s) > 5 {
		return TimeString(s[:5])
	}
	return TimeString(s)
}
