package config

import "time"

// Environment variables read by this package.
const (
	EnvToken      = "TUSHARE_TOKEN"
	EnvConfigPath = "TUSHARE_CONFIG_PATH"
	EnvAPIURL     = "TUSHARE_API_URL"
)

const (
	// DefaultEndpoint is the Tushare Pro HTTP API.
	DefaultEndpoint = "https://api.tushare.pro"

	// DefaultTimeout of zero leaves the transport default in place.
	DefaultTimeout time.Duration = 0

	userConfigDir    = ".tushare"
	tokenFileName    = "token.txt"
	settingsFileName = "config.yaml"

	tokenFileMode = 0o600
	configDirMode = 0o700
)

// DefaultSettings returns the settings used when no config.yaml exists.
func DefaultSettings() Settings {
	return Settings{
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeout,
	}
}
