package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutFileIsDisabled(t *testing.T) {
	logger, closer, err := New(Options{})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "whenisthat.log")

	logger, closer, err := New(Options{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.Debug().Str("mode", "custom").Msg("mode toggled")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "mode toggled", line["message"])
	assert.Equal(t, "custom", line["mode"])
	assert.Equal(t, "whenisthat", line["app"])
	assert.Contains(t, line, "time")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.WarnLevel)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, level)

	_, err = ParseLevel("loud")
	assert.ErrorContains(t, err, "invalid log level 'loud'")
}

func TestNewInvalidLevel(t *testing.T) {
	_, _, err := New(Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}
