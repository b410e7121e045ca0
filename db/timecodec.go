package db

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ReleaseTimeLayout is the calendar format the ModDB API uses for
// "lastreleased" values.
const ReleaseTimeLayout = "2006-01-02 15:04:05"

// ParseReleaseTime parses an API release timestamp. The layout is strict; a
// string that does not match surfaces the underlying parse error.
func ParseReleaseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ReleaseTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse release time %q: %w", s, err)
	}
	return t, nil
}

// EncodeReleaseTime converts a release value to epoch seconds. It accepts
// either a calendar time or a raw API string.
func EncodeReleaseTime(value any) (int64, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Unix(), nil
	case string:
		t, err := ParseReleaseTime(v)
		if err != nil {
			return 0, err
		}
		return t.Unix(), nil
	default:
		return 0, fmt.Errorf("cannot encode %T as a release time", value)
	}
}

// DecodeReleaseTime converts stored epoch seconds back to a calendar time.
func DecodeReleaseTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// UnixTime is a calendar timestamp persisted as integer epoch seconds.
type UnixTime struct {
	time.Time
}

// NewUnixTime wraps a calendar time.
func NewUnixTime(t time.Time) UnixTime {
	return UnixTime{Time: t}
}

// GormDataType stores the column as an integer.
func (UnixTime) GormDataType() string { return "bigint" }

// Value encodes the timestamp for storage.
func (u UnixTime) Value() (driver.Value, error) {
	if u.IsZero() {
		return nil, nil
	}
	sec, err := EncodeReleaseTime(u.Time)
	if err != nil {
		return nil, err
	}
	return sec, nil
}

// Scan rehydrates a stored value. Integer epoch seconds are the persisted
// form; strings are tolerated so a raw API value scans too.
func (u *UnixTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*u = UnixTime{}
		return nil
	case int64:
		*u = UnixTime{Time: DecodeReleaseTime(v)}
		return nil
	case time.Time:
		*u = UnixTime{Time: v}
		return nil
	case string:
		t, err := ParseReleaseTime(v)
		if err != nil {
			return err
		}
		*u = UnixTime{Time: t}
		return nil
	case []byte:
		t, err := ParseReleaseTime(string(v))
		if err != nil {
			return err
		}
		*u = UnixTime{Time: t}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into UnixTime", value)
	}
}
