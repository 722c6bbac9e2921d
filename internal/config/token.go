package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tushare/pkg/logging"
)

// userHomeDir is replaced in tests.
var userHomeDir = os.UserHomeDir

// TokenPath returns the location of the token file.
func TokenPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	home, err := userHomeDir()
	if err != nil || home == "" {
		logging.Warn("Config", "Could not determine home directory, using the working directory: %v", err)
		home = "."
	}
	return filepath.Join(home, userConfigDir, tokenFileName)
}

// ConfigDir returns the directory holding the token file and config.yaml.
func ConfigDir() string {
	return filepath.Dir(TokenPath())
}

// LoadToken reads the token stored at path. A missing or blank file yields
// an empty token and no error.
func LoadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No token file at %s", path)
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveToken writes token to path, creating parent directories as needed.
// The file is readable by the owner only.
func SaveToken(path, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token must not be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("failed to create directory for token file: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), tokenFileMode); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", path, err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, tokenFileMode); err != nil {
		return fmt.Errorf("failed to restrict token file permissions: %w", err)
	}

	logging.Info("Config", "Saved token to %s", path)
	return nil
}

// ResolveToken returns the first non-empty token from override, the
// TUSHARE_TOKEN environment variable and the token file, in that order.
func ResolveToken(override string) (string, error) {
	if token := strings.TrimSpace(override); token != "" {
		logging.Debug("Config", "Using token from command line")
		return token, nil
	}

	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		logging.Debug("Config", "Using token from %s", EnvToken)
		return token, nil
	}

	path := TokenPath()
	token, err := LoadToken(path)
	if err != nil {
		return "", err
	}
	if token != "" {
		logging.Debug("Config", "Using token from %s", path)
		return token, nil
	}

	return "", &CredentialMissingError{TokenPath: path}
}
