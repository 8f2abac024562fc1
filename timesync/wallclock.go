package timesync

import "time"

// WallClock holds the human-readable fields of a time, detached from any
// zone. Interpreting it in a zone yields an absolute instant.
type WallClock struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// WallClockOf extracts the wall-clock fields of t in t's own location.
func WallClockOf(t time.Time) WallClock {
	return WallClock{
		Year:       t.Year(),
		Month:      t.Month(),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

// In interprets the fields in loc. Out of range fields normalize the way
// time.Date does.
func (w WallClock) In(loc *time.Location) time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, w.Nanosecond, loc)
}

// WithHour returns a copy with the hour replaced.
func (w WallClock) WithHour(hour int) WallClock {
	w.Hour = hour
	return w
}

// WithMinute returns a copy with the minute replaced.
func (w WallClock) WithMinute(minute int) WallClock {
	w.Minute = minute
	return w
}

// Truncated returns a copy with seconds and sub-seconds zeroed.
func (w WallClock) Truncated() WallClock {
	w.Second, w.Nanosecond = 0, 0
	return w
}

// ReanchorPreservingWallClock attaches t's wall-clock fields to loc. The
// absolute instant changes unless both zones share an offset.
func ReanchorPreservingWallClock(t time.Time, loc *time.Location) time.Time {
	return WallClockOf(t).In(loc)
}

// ReanchorPreservingInstant expresses the same absolute instant in loc; only
// the wall-clock fields change.
func ReanchorPreservingInstant(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}
