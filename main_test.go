package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philtim/whenisthat/config"
	"github.com/philtim/whenisthat/timesync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareRejectsZonesBeforeLogging(t *testing.T) {
	tests := map[string]func(*config.Config){
		"local":      func(c *config.Config) { c.LocalTimezone = "Mars/Olympus_Mons" },
		"comparison": func(c *config.Config) { c.ComparisonTimezone = "Mars/Olympus_Mons" },
	}
	for name, breakZone := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "whenisthat.log")
			cfg := config.Default()
			cfg.LocalTimezone = "UTC"
			cfg.ComparisonTimezone = "Asia/Tokyo"
			cfg.LogFile = path
			breakZone(cfg)

			env, err := prepare(cfg)
			require.Error(t, err)
			assert.Nil(t, env)
			assert.ErrorIs(t, err, timesync.ErrUnknownZone)
			assert.Contains(t, err.Error(), name+" timezone")

			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "no log file is opened")
		})
	}
}

func TestPrepareOpensLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whenisthat.log")
	cfg := config.Default()
	cfg.LocalTimezone = "Europe/Berlin"
	cfg.ComparisonTimezone = "Asia/Tokyo"
	cfg.LogFile = path
	cfg.LogLevel = "info"

	env, err := prepare(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", env.local.String())
	assert.Equal(t, "Asia/Tokyo", env.comparison.String())

	env.logger.Info().Msg("starting")
	require.NoError(t, env.closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting")
}
