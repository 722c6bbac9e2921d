package config

import "fmt"

// CredentialMissingError is returned when no API token could be resolved.
type CredentialMissingError struct {
	// TokenPath is the token file that was consulted.
	TokenPath string
}

func (e *CredentialMissingError) Error() string {
	return "API token is not configured"
}

// Is reports whether target is a CredentialMissingError.
func (e *CredentialMissingError) Is(target error) bool {
	_, ok := target.(*CredentialMissingError)
	return ok
}

// Remediation lists the ways to provide a token.
func (e *CredentialMissingError) Remediation() []string {
	path := e.TokenPath
	if path == "" {
		path = "~/" + userConfigDir + "/" + tokenFileName
	}
	return []string{
		fmt.Sprintf("export %s=<your token>", EnvToken),
		"pass --token <your token> (or -t) on the command line",
		fmt.Sprintf("run 'tushare set-token <your token>' to store it in %s", path),
		"get a token at https://tushare.pro/user/token",
	}
}

// SettingsError is returned when config.yaml exists but cannot be used.
type SettingsError struct {
	Path string
	Err  error
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("error loading settings from %s: %v", e.Path, e.Err)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}
