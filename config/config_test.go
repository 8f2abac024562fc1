package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutLocaltime(t *testing.T) {
	t.Helper()
	old := localtimePath
	localtimePath = filepath.Join(t.TempDir(), "missing")
	t.Cleanup(func() { localtimePath = old })
}

func TestParse(t *testing.T) {
	data := []byte(`
local_timezone: Europe/Berlin
comparison_timezone: Asia/Tokyo
week_start: Monday
log_file: /tmp/whenisthat.log
log_level: debug
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", cfg.LocalTimezone)
	assert.Equal(t, "Asia/Tokyo", cfg.ComparisonTimezone)
	assert.Equal(t, "monday", cfg.WeekStart)
	assert.Equal(t, "/tmp/whenisthat.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseDefaults(t *testing.T) {
	withoutLocaltime(t)
	t.Setenv("TZ", "America/New_York")

	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", cfg.LocalTimezone)
	assert.Equal(t, FallbackComparisonTimezone, cfg.ComparisonTimezone, "local already is New York")
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("local_timezone: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = Parse([]byte("local_timezone: Mars/Olympus_Mons"))
	assert.ErrorContains(t, err, "invalid timezone 'Mars/Olympus_Mons' for local_timezone")

	_, err = Parse([]byte("local_timezone: UTC\ncomparison_timezone: Nowhere/Land"))
	assert.ErrorContains(t, err, "comparison_timezone")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "whenisthat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("local_timezone: Asia/Kolkata\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", cfg.LocalTimezone)
	assert.Equal(t, DefaultComparisonTimezone, cfg.ComparisonTimezone)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	withoutLocaltime(t)
	t.Setenv("TZ", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.LocalTimezone)
	assert.Equal(t, DefaultComparisonTimezone, cfg.ComparisonTimezone)
}

func TestLoadDoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whenisthat.yaml")
	_, err := Load(path)
	require.NoError(t, err)
	assert.NoFileExists(t, path)
}

func TestSystemTimezone(t *testing.T) {
	t.Run("TZ variable", func(t *testing.T) {
		withoutLocaltime(t)
		t.Setenv("TZ", ":Asia/Tokyo")
		assert.Equal(t, "Asia/Tokyo", GetSystemTimezone())
	})

	t.Run("invalid TZ ignored", func(t *testing.T) {
		withoutLocaltime(t)
		t.Setenv("TZ", "Nowhere/Land")
		assert.Equal(t, "UTC", GetSystemTimezone())
	})

	t.Run("localtime symlink", func(t *testing.T) {
		t.Setenv("TZ", "")
		dir := t.TempDir()
		link := filepath.Join(dir, "localtime")
		require.NoError(t, os.Symlink("/usr/share/zoneinfo/Europe/Berlin", link))

		old := localtimePath
		localtimePath = link
		t.Cleanup(func() { localtimePath = old })

		assert.Equal(t, "Europe/Berlin", GetSystemTimezone())
	})
}

func TestZoneFromPath(t *testing.T) {
	assert.Equal(t, "America/Argentina/Buenos_Aires", zoneFromPath("../usr/share/zoneinfo/America/Argentina/Buenos_Aires"))
	assert.Equal(t, "", zoneFromPath("/etc/timezone"))
}
