package catalog

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog() *Catalog {
	// mid-January: no DST in the northern hemisphere
	return New(clockwork.NewFakeClockAt(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)))
}

func TestGroups(t *testing.T) {
	c := newTestCatalog()
	groups := c.Groups()

	var labels []string
	total := 0
	for _, g := range groups {
		labels = append(labels, g.Label)
		total += len(g.Options)
		for _, opt := range g.Options {
			assert.Equal(t, g.Label, opt.Region)
		}
	}
	assert.Equal(t, []string{"Americas", "Europe", "Asia", "Pacific", "Australia", "Africa", "Universal"}, labels)
	assert.Equal(t, len(c.All()), total)
	assert.Equal(t, "New York", groups[0].Options[0].Label)
}

func TestOffsets(t *testing.T) {
	c := newTestCatalog()

	tests := map[string]string{
		"America/New_York": "UTC-5",
		"Asia/Kolkata":     "UTC+5:30",
		"Europe/London":    "UTC+0",
		"UTC":              "UTC+0",
		"Australia/Sydney": "UTC+11",
	}
	for zone, want := range tests {
		opt, ok := c.Lookup(zone)
		require.True(t, ok, zone)
		assert.Equal(t, want, opt.Offset, zone)
	}

	_, ok := c.Lookup("Mars/Olympus_Mons")
	assert.False(t, ok)
}

func TestMemoized(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	c := New(fake)

	first := c.All()
	// offsets are computed once; moving into DST does not recompute them
	fake.Advance(180 * 24 * time.Hour)
	second := c.All()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, "UTC-5", second[0].Offset)
}

func TestResultsDoNotShareCache(t *testing.T) {
	c := newTestCatalog()

	all := c.Search("", 0)
	require.NotEmpty(t, all)
	all[0].Label = "Atlantis"

	limited := c.Search("  ", 3)
	require.Len(t, limited, 3)
	limited[1].Zone = "Mars/Olympus_Mons"

	groups := c.Groups()
	groups[0].Options[0].Offset = "UTC+99"
	groups[0].Label = "Nowhere"

	fresh := c.All()
	assert.Equal(t, "New York", fresh[0].Label)
	assert.NotEqual(t, "Mars/Olympus_Mons", fresh[1].Zone)
	assert.Equal(t, "UTC-5", fresh[0].Offset)
	assert.Equal(t, "Americas", c.Groups()[0].Label)
	assert.Equal(t, "UTC-5", c.Groups()[0].Options[0].Offset)
}

func TestSearch(t *testing.T) {
	c := newTestCatalog()

	t.Run("empty query returns all", func(t *testing.T) {
		assert.Len(t, c.Search("", 0), len(c.All()))
		assert.Len(t, c.Search("   ", 3), 3)
	})

	t.Run("label prefix", func(t *testing.T) {
		got := c.Search("lon", 0)
		require.NotEmpty(t, got)
		assert.Equal(t, "Europe/London", got[0].Zone)
	})

	t.Run("exact match ranks first", func(t *testing.T) {
		got := c.Search("Paris", 0)
		require.NotEmpty(t, got)
		assert.Equal(t, "Europe/Paris", got[0].Zone)

		got = c.Search("asia/tokyo", 0)
		require.Len(t, got, 1)
		assert.Equal(t, "Tokyo", got[0].Label)
	})

	t.Run("by zone identifier", func(t *testing.T) {
		got := c.Search("kolkata", 0)
		require.Len(t, got, 1)
		assert.Equal(t, "Mumbai", got[0].Label)
	})

	t.Run("by region", func(t *testing.T) {
		got := c.Search("australia", 0)
		assert.Len(t, got, 5)
	})

	t.Run("by offset", func(t *testing.T) {
		got := c.Search("utc+5:30", 0)
		require.Len(t, got, 1)
		assert.Equal(t, "Asia/Kolkata", got[0].Zone)
	})

	t.Run("limit", func(t *testing.T) {
		assert.Len(t, c.Search("a", 5), 5)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Search("atlantis", 0))
	})
}

func TestDisplayName(t *testing.T) {
	c := newTestCatalog()
	assert.Equal(t, "Mumbai", c.DisplayName("Asia/Kolkata"))
	assert.Equal(t, "San Francisco", c.DisplayName("America/Los_Angeles"))
	assert.Equal(t, "Buenos Aires", c.DisplayName("America/Argentina/Buenos_Aires"))
	assert.Equal(t, "Etc", c.DisplayName("Etc"))
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
