// Package config resolves the credential and settings used by the tushare CLI.
//
// # Credential
//
// The API token is taken from the first non-empty source of:
//   - the --token/-t command line option
//   - the TUSHARE_TOKEN environment variable
//   - the token file, ~/.tushare/token.txt by default or the path in
//     TUSHARE_CONFIG_PATH
//
// When none yields a value, ResolveToken returns a *CredentialMissingError
// carrying the remediation steps shown to the user.
//
// # Settings
//
// An optional config.yaml next to the token file tunes the HTTP exchange:
//
//	endpoint: https://api.tushare.pro
//	timeout: 30s
//
// TUSHARE_API_URL overrides the endpoint from the file. A missing file is not
// an error; the defaults apply.
package config
