package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds the tunables read from config.yaml.
type Settings struct {
	// OpenAttempts is how many times the store open is tried.
	OpenAttempts int

	// RetryDelay is the pause between open attempts.
	RetryDelay time.Duration
}

// fileSettings mirrors config.yaml. Durations are Go duration strings.
type fileSettings struct {
	OpenAttempts *int   `yaml:"open_attempts"`
	RetryDelay   string `yaml:"retry_delay"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		OpenAttempts: 10,
		RetryDelay:   100 * time.Millisecond,
	}
}

// LoadSettings reads settings from path. A missing file yields DefaultSettings;
// fields absent from the file keep their defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read config: %w", err)
	}

	var raw fileSettings
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return settings, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if raw.OpenAttempts != nil {
		if *raw.OpenAttempts < 1 {
			return settings, fmt.Errorf("invalid open_attempts %d in %s: must be at least 1", *raw.OpenAttempts, path)
		}
		settings.OpenAttempts = *raw.OpenAttempts
	}

	if raw.RetryDelay != "" {
		d, err := time.ParseDuration(raw.RetryDelay)
		if err != nil {
			return settings, fmt.Errorf("invalid retry_delay in %s: %w", path, err)
		}
		if d < 0 {
			return settings, fmt.Errorf("invalid retry_delay %s in %s: must not be negative", raw.RetryDelay, path)
		}
		settings.RetryDelay = d
	}

	return settings, nil
}
