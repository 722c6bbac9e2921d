package client

import "fmt"

// API status codes with known causes.
const (
	CodeAuthFailed = -10000
	CodeUnknownAPI = -10001
)

// TransportError is returned when the exchange with the API fails before a
// reply envelope could be read.
type TransportError struct {
	Endpoint string
	// Op names the failing step, e.g. "post" or "decode reply".
	Op   string
	Kind TransportKind
	Err  error
}

func newTransportError(endpoint, op string, err error) *TransportError {
	return &TransportError{Endpoint: endpoint, Op: op, Kind: classifyTransport(err), Err: err}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed (%s): %v", e.Endpoint, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a TransportError.
func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	return ok
}

// Hints returns remediation lines for failures with a recognizable cause.
func (e *TransportError) Hints() []string {
	switch e.Kind {
	case TransportDNS:
		return []string{"Could not resolve the API host. Check your network and the TUSHARE_API_URL setting."}
	case TransportTLS:
		return []string{"The server certificate could not be verified. Check the endpoint URL and any intercepting proxy."}
	case TransportTimeout:
		return []string{"The API did not answer in time. Retry later or raise the timeout in config.yaml."}
	case TransportNetwork:
		return []string{"Could not connect to the API. Check your network connection."}
	default:
		return nil
	}
}

// RemoteError is returned when the API replies with a non-zero code.
type RemoteError struct {
	Code      int
	Message   string
	RequestID string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("API call failed (code %d): %s", e.Code, e.Message)
}

// Is reports whether target is a RemoteError.
func (e *RemoteError) Is(target error) bool {
	_, ok := target.(*RemoteError)
	return ok
}

// Hints returns remediation lines for codes with a known cause, or nil.
func (e *RemoteError) Hints() []string {
	switch e.Code {
	case CodeAuthFailed:
		return []string{
			"Possible causes:",
			"  - the token is invalid or has expired",
			"  - the account does not have enough points",
			"  - the account has no permission for this API",
			"Check your token at https://tushare.pro/user/token",
		}
	case CodeUnknownAPI:
		return []string{
			"Possible causes:",
			"  - the API name is misspelled",
			"  - the API has been retired",
			"Run 'tushare list' to see the available APIs",
		}
	default:
		return nil
	}
}
