package client

import (
	"context"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"tushare/internal/args"
	"tushare/internal/config"
	"tushare/internal/dataset"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a fake API that stores every request body it receives.
type recorder struct {
	mu       sync.Mutex
	bodies   [][]byte
	headers  []http.Header
	status   int
	response string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)
	r.mu.Lock()
	r.bodies = append(r.bodies, body)
	r.headers = append(r.headers, req.Header.Clone())
	r.mu.Unlock()

	if r.status != 0 {
		w.WriteHeader(r.status)
	}
	_, _ = io.WriteString(w, r.response)
}

func newTestClient(t *testing.T, rec *recorder) *Client {
	t.Helper()
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)
	return New(Config{Endpoint: srv.URL, Token: "secret", HTTPClient: srv.Client()})
}

const okReply = `{"request_id":"r-1","code":0,"msg":"","data":{"fields":["ts_code","close"],"items":[["000001.SZ",10.5],["600000.SH",7]]}}`

func stockParams() []args.Param {
	return []args.Param{
		{Key: "ts_code", Value: args.Coerce("000001.SZ")},
		{Key: "limit", Value: args.Coerce("10")},
		{Key: "adj", Value: args.Coerce("true")},
	}
}

func TestCall_Success(t *testing.T) {
	rec := &recorder{response: okReply}
	c := newTestClient(t, rec)

	reply, err := c.Call(context.Background(), "daily", stockParams(), "ts_code,close")
	require.NoError(t, err)

	assert.Equal(t, "r-1", reply.RequestID)
	assert.Equal(t, []dataset.Row{
		{"ts_code": "000001.SZ", "close": json.Number("10.5")},
		{"ts_code": "600000.SH", "close": json.Number("7")},
	}, reply.Rows())

	require.Len(t, rec.bodies, 1)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.bodies[0], &sent))
	assert.Equal(t, "daily", sent["api_name"])
	assert.Equal(t, "secret", sent["token"])
	assert.Equal(t, "ts_code,close", sent["fields"])
	assert.Equal(t, map[string]any{"ts_code": "000001.SZ", "limit": float64(10), "adj": true}, sent["params"])

	assert.Contains(t, string(rec.bodies[0]), `"limit":10`, "integral numbers are sent as integer literals")
	assert.Equal(t, "application/json", rec.headers[0].Get("Content-Type"))
	_, err = uuid.Parse(rec.headers[0].Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestCall_EmptyParamsAndFields(t *testing.T) {
	rec := &recorder{response: okReply}
	c := newTestClient(t, rec)

	_, err := c.Call(context.Background(), "trade_cal", nil, "")
	require.NoError(t, err)

	assert.JSONEq(t, `{"api_name":"trade_cal","token":"secret","params":{}}`, string(rec.bodies[0]))
}

func TestCall_NullData(t *testing.T) {
	rec := &recorder{response: `{"request_id":"r-2","code":0,"msg":null,"data":null}`}
	c := newTestClient(t, rec)

	reply, err := c.Call(context.Background(), "daily", nil, "")
	require.NoError(t, err)
	assert.Empty(t, reply.Rows())
}

func TestCall_ModesSendIdenticalBodies(t *testing.T) {
	rec := &recorder{response: okReply}
	c := newTestClient(t, rec)
	params := stockParams()

	_, err := c.Call(context.Background(), "daily", params, "ts_code")
	require.NoError(t, err)

	result := <-c.CallAsync(context.Background(), "daily", params, "ts_code")
	require.NoError(t, result.Err)
	require.NotNil(t, result.Reply)

	_, err = c.CallSync("daily", params, "ts_code")
	require.NoError(t, err)

	require.Len(t, rec.bodies, 3)
	assert.Equal(t, rec.bodies[0], rec.bodies[1])
	assert.Equal(t, rec.bodies[0], rec.bodies[2])

	assert.NotEqual(t, rec.headers[0].Get(RequestIDHeader), rec.headers[1].Get(RequestIDHeader))
}

func TestCallAsync_ClosesChannel(t *testing.T) {
	rec := &recorder{response: okReply}
	c := newTestClient(t, rec)

	results := c.CallAsync(context.Background(), "daily", nil, "")
	<-results
	_, open := <-results
	assert.False(t, open)
}

func TestCall_RemoteError(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		code      int
		wantHints bool
	}{
		{
			name:      "auth failure",
			response:  `{"request_id":"r-3","code":-10000,"msg":"token invalid","data":null}`,
			code:      CodeAuthFailed,
			wantHints: true,
		},
		{
			name:      "unknown api",
			response:  `{"request_id":"r-4","code":-10001,"msg":"no such api","data":null}`,
			code:      CodeUnknownAPI,
			wantHints: true,
		},
		{
			name:     "other code",
			response: `{"request_id":"r-5","code":40203,"msg":"rate limited","data":null}`,
			code:     40203,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, &recorder{response: tt.response})

			_, err := c.Call(context.Background(), "daily", nil, "")
			require.Error(t, err)

			var remote *RemoteError
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, tt.code, remote.Code)
			assert.NotEmpty(t, remote.RequestID)
			assert.Contains(t, remote.Error(), "API call failed")
			if tt.wantHints {
				assert.NotEmpty(t, remote.Hints())
			} else {
				assert.Nil(t, remote.Hints())
			}
		})
	}
}

func TestCall_RemoteErrorWithHTTPStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			c := newTestClient(t, &recorder{
				status:   status,
				response: `{"request_id":"r-6","code":-10001,"msg":"api not found","data":null}`,
			})

			_, err := c.CallSync("no_such_api", nil, "")
			require.Error(t, err)

			var remote *RemoteError
			require.True(t, errors.As(err, &remote), "got %T: %v", err, err)
			assert.Equal(t, CodeUnknownAPI, remote.Code)
			assert.Equal(t, "api not found", remote.Message)
			assert.Equal(t, "r-6", remote.RequestID)
			assert.NotEmpty(t, remote.Hints())
			assert.False(t, errors.Is(err, &TransportError{}))
		})
	}
}

func TestCall_TransportErrors(t *testing.T) {
	tests := []struct {
		name   string
		rec    *recorder
		wantOp string
	}{
		{name: "http status", rec: &recorder{status: http.StatusBadGateway, response: "bad gateway"}, wantOp: "post"},
		{name: "malformed reply", rec: &recorder{response: "<html>"}, wantOp: "decode reply"},
		{name: "http status with success envelope", rec: &recorder{status: http.StatusInternalServerError, response: `{"code":0,"msg":""}`}, wantOp: "post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.rec)

			_, err := c.Call(context.Background(), "daily", nil, "")
			require.Error(t, err)

			var transport *TransportError
			require.True(t, errors.As(err, &transport))
			assert.Equal(t, tt.wantOp, transport.Op)
			assert.Equal(t, c.Endpoint(), transport.Endpoint)
		})
	}
}

func TestCall_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	c := New(Config{Endpoint: endpoint, Token: "secret", Timeout: time.Second})
	_, err := c.CallSync("daily", nil, "")

	var transport *TransportError
	require.True(t, errors.As(err, &transport))
	assert.Equal(t, "post", transport.Op)
}

func TestCall_ContextCancelled(t *testing.T) {
	rec := &recorder{response: okReply}
	c := newTestClient(t, rec)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Call(ctx, "daily", nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCall_MissingToken(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "token.txt"))
	rec := &recorder{response: okReply}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	c := New(Config{Endpoint: srv.URL})
	_, err := c.Call(context.Background(), "daily", nil, "")

	var missing *config.CredentialMissingError
	require.True(t, errors.As(err, &missing))
	assert.Empty(t, rec.bodies, "no request is sent without a token")
}

func TestNew_Defaults(t *testing.T) {
	c := New(Config{Token: "x"})
	assert.Equal(t, config.DefaultEndpoint, c.Endpoint())
}

func TestClassifyTransport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want TransportKind
	}{
		{name: "nil", err: nil, want: TransportUnknown},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "api.example"}, want: TransportDNS},
		{name: "deadline", err: fmt.Errorf("post: %w", context.DeadlineExceeded), want: TransportTimeout},
		{name: "refused", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, want: TransportNetwork},
		{name: "tls message", err: errors.New("tls: failed to verify certificate"), want: TransportTLS},
		{name: "x509 unknown authority", err: x509.UnknownAuthorityError{}, want: TransportTLS},
		{name: "status", err: errors.New("unexpected HTTP status 502"), want: TransportUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTransport(tt.err))
		})
	}
}

func TestTransportError_Hints(t *testing.T) {
	assert.NotEmpty(t, (&TransportError{Kind: TransportTimeout}).Hints())
	assert.NotEmpty(t, (&TransportError{Kind: TransportDNS}).Hints())
	assert.Nil(t, (&TransportError{Kind: TransportUnknown}).Hints())
	assert.Equal(t, "timeout", TransportTimeout.String())
}

func TestCall_TimeoutIsClassified(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := New(Config{Endpoint: srv.URL, Token: "secret", Timeout: 50 * time.Millisecond})
	_, err := c.CallSync("daily", nil, "")

	var transport *TransportError
	require.True(t, errors.As(err, &transport))
	assert.Equal(t, TransportTimeout, transport.Kind)
}
