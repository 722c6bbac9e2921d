// Package client invokes operations on the Tushare Pro HTTP API.
//
// Every call is a single POST of a JSON envelope
//
//	{"api_name": "daily", "token": "...", "params": {...}, "fields": "a,b"}
//
// to the configured endpoint. The reply envelope carries a status code, a
// message and a tabular data block; a code of zero is the only success value.
//
// # Modes
//
// Call is the primitive and honours its context. CallAsync runs Call on its
// own goroutine and delivers the outcome on a channel, which lets the CLI keep
// a spinner going while it waits. CallSync blocks without a context. All three
// build the request with the same function, so the bytes on the wire do not
// depend on the mode.
//
// # Errors
//
//   - *config.CredentialMissingError: no token, detected before any network I/O
//   - *TransportError: connection, HTTP status or decoding failures
//   - *RemoteError: the API answered with a non-zero code
//
// There is no retry. Each request carries an X-Request-ID header so a failure
// can be correlated with the server's request_id in debug logs.
package client
