package clock

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock represents a clock bound to a specific timezone
type Clock struct {
	Name     string
	Location *time.Location

	src clockwork.Clock
}

// New creates a new Clock instance. A nil src uses the real system clock.
func New(name, timezone string, src clockwork.Clock) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone '%s': %w", timezone, err)
	}

	return NewAt(name, loc, src), nil
}

// NewAt creates a Clock for an already resolved location.
func NewAt(name string, loc *time.Location, src clockwork.Clock) *Clock {
	if src == nil {
		src = clockwork.NewRealClock()
	}
	return &Clock{
		Name:     name,
		Location: loc,
		src:      src,
	}
}

// Zone returns the IANA name of the clock's timezone
func (c *Clock) Zone() string {
	return c.Location.String()
}

// Now returns the current time in the clock's timezone
func (c *Clock) Now() time.Time {
	return c.src.Now().In(c.Location)
}

// FormatTime returns the time in 24-hour format (HH:MM:SS)
func (c *Clock) FormatTime() string {
	return c.Now().Format("15:04:05")
}

// UTCOffset returns the current UTC offset in seconds
func (c *Clock) UTCOffset() int {
	_, offset := c.Now().Zone()
	return offset
}

// FormatUTCOffset returns the UTC offset in ±HH:MM format
func (c *Clock) FormatUTCOffset() string {
	return FormatOffset(c.UTCOffset())
}

// FormatShortOffset returns the UTC offset in the short form used by zone
// pickers, e.g. "UTC-5" or "UTC+5:30".
func (c *Clock) FormatShortOffset() string {
	return FormatShortOffset(c.UTCOffset())
}

// FormatOffset formats an offset in seconds as UTC±HH:MM.
func FormatOffset(offset int) string {
	sign, hours, minutes := splitOffset(offset)
	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}

// FormatShortOffset formats an offset in seconds as UTC±H[:MM], with a zero
// offset rendered as "UTC+0".
func FormatShortOffset(offset int) string {
	sign, hours, minutes := splitOffset(offset)
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}

func splitOffset(offset int) (sign string, hours, minutes int) {
	sign = "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return sign, offset / 3600, (offset % 3600) / 60
}
