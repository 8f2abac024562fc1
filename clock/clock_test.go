package clock

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2026, 1, 15, 12, 0, 5, 0, time.UTC))

	clk, err := New("Your Time", "America/New_York", fake)
	require.NoError(t, err)

	assert.Equal(t, "Your Time", clk.Name)
	assert.Equal(t, "America/New_York", clk.Zone())
	assert.Equal(t, "07:00:05", clk.FormatTime())
	assert.Equal(t, -5*3600, clk.UTCOffset())
	assert.Equal(t, "UTC-05:00", clk.FormatUTCOffset())
	assert.Equal(t, "UTC-5", clk.FormatShortOffset())

	fake.Advance(time.Hour)
	assert.Equal(t, "08:00:05", clk.FormatTime())
}

func TestNewInvalidTimezone(t *testing.T) {
	_, err := New("Nowhere", "Mars/Olympus_Mons", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Mars/Olympus_Mons")
}

func TestNewAtDefaultsToRealClock(t *testing.T) {
	clk := NewAt("UTC", time.UTC, nil)
	assert.WithinDuration(t, time.Now(), clk.Now(), 5*time.Second)
}

func TestFormatOffsets(t *testing.T) {
	tests := []struct {
		offset int
		long   string
		short  string
	}{
		{0, "UTC+00:00", "UTC+0"},
		{3600, "UTC+01:00", "UTC+1"},
		{-5 * 3600, "UTC-05:00", "UTC-5"},
		{5*3600 + 30*60, "UTC+05:30", "UTC+5:30"},
		{-(9*3600 + 30*60), "UTC-09:30", "UTC-9:30"},
		{12*3600 + 45*60, "UTC+12:45", "UTC+12:45"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.long, FormatOffset(tt.offset))
		assert.Equal(t, tt.short, FormatShortOffset(tt.offset))
	}
}
