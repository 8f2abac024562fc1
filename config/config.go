package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultComparisonTimezone is shown as "their time" on first start
	DefaultComparisonTimezone = "America/New_York"
	// FallbackComparisonTimezone replaces the default when the local zone
	// already is the default
	FallbackComparisonTimezone = "Europe/London"
)

// Config represents the application configuration. The file is only ever
// read; selections made at runtime are not written back.
type Config struct {
	// LocalTimezone overrides the detected system timezone
	LocalTimezone string `yaml:"local_timezone"`
	// ComparisonTimezone is the initial zone of the second panel
	ComparisonTimezone string `yaml:"comparison_timezone"`
	// WeekStart is "sunday" (default) or "monday"
	WeekStart string `yaml:"week_start"`
	// LogFile enables logging to the given path
	LogFile string `yaml:"log_file"`
	// LogLevel is a zerolog level name
	LogLevel string `yaml:"log_level"`
}

// Default returns the in-memory default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.Normalize()
	return cfg
}

// Load reads the configuration from path, or from
// ~/.config/whenisthat.yaml when path is empty. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration data, fills defaults and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Normalize fills missing values with defaults
func (c *Config) Normalize() {
	if c.LocalTimezone == "" {
		c.LocalTimezone = GetSystemTimezone()
	}
	if c.ComparisonTimezone == "" {
		c.ComparisonTimezone = DefaultComparisonFor(c.LocalTimezone)
	}

	switch strings.ToLower(c.WeekStart) {
	case "monday":
		c.WeekStart = "monday"
	default:
		c.WeekStart = "sunday"
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that all timezone identifiers are valid
func (c *Config) Validate() error {
	zones := []struct {
		field string
		value string
	}{
		{"local_timezone", c.LocalTimezone},
		{"comparison_timezone", c.ComparisonTimezone},
	}

	for _, z := range zones {
		if z.value == "" {
			return fmt.Errorf("%s is empty", z.field)
		}
		if _, err := time.LoadLocation(z.value); err != nil {
			return fmt.Errorf("invalid timezone '%s' for %s: %w", z.value, z.field, err)
		}
	}

	return nil
}

// DefaultComparisonFor picks the comparison zone shown next to local
func DefaultComparisonFor(local string) string {
	if local == DefaultComparisonTimezone {
		return FallbackComparisonTimezone
	}
	return DefaultComparisonTimezone
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "whenisthat.yaml"), nil
}

// localtimePath is the symlink most systems point at their zoneinfo file
var localtimePath = "/etc/localtime"

// getSystemTimezone returns the system's IANA timezone name
func getSystemTimezone() string {
	// TZ wins when it names a loadable zone
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}

	// /etc/localtime -> /usr/share/zoneinfo/Europe/Berlin
	if target, err := os.Readlink(localtimePath); err == nil {
		if name := zoneFromPath(target); name != "" {
			if _, err := time.LoadLocation(name); err == nil {
				return name
			}
		}
	}

	// Fallback to UTC if we can't determine
	return "UTC"
}

func zoneFromPath(p string) string {
	const marker = "zoneinfo/"
	i := strings.LastIndex(p, marker)
	if i < 0 {
		return ""
	}
	return p[i+len(marker):]
}

// GetSystemTimezone returns the system's IANA timezone name (exported version)
func GetSystemTimezone() string {
	return getSystemTimezone()
}
