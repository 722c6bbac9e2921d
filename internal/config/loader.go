package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"tushare/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Settings tune the HTTP exchange with the API.
type Settings struct {
	// Endpoint is the URL requests are posted to.
	Endpoint string `yaml:"endpoint"`
	// Timeout bounds one request; zero means no client-side limit.
	Timeout time.Duration `yaml:"timeout"`
}

// LoadSettings reads config.yaml from dir on top of the defaults and applies
// the TUSHARE_API_URL override.
func LoadSettings(dir string) (Settings, error) {
	settings := DefaultSettings()
	path := filepath.Join(dir, settingsFileName)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, &SettingsError{Path: path, Err: err}
		}
		logging.Debug("Config", "Loaded settings from %s", path)
	case errors.Is(err, os.ErrNotExist):
		logging.Debug("Config", "No %s found at %s, using defaults", settingsFileName, path)
	default:
		return Settings{}, &SettingsError{Path: path, Err: err}
	}

	if endpoint := os.Getenv(EnvAPIURL); endpoint != "" {
		logging.Debug("Config", "Endpoint overridden by %s", EnvAPIURL)
		settings.Endpoint = endpoint
	}
	if settings.Endpoint == "" {
		settings.Endpoint = DefaultEndpoint
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, &SettingsError{Path: path, Err: err}
	}
	return settings, nil
}

// Validate checks that the endpoint is an absolute http(s) URL and the
// timeout is not negative.
func (s Settings) Validate() error {
	u, err := url.Parse(s.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", s.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: expected an http or https URL", s.Endpoint)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", s.Timeout)
	}
	return nil
}
