package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tushare/internal/args"
	"tushare/internal/config"
	"tushare/pkg/logging"

	"github.com/google/uuid"
)

// RequestIDHeader carries the client generated id of each call.
const RequestIDHeader = "X-Request-ID"

// Config configures a Client.
type Config struct {
	// Endpoint defaults to config.DefaultEndpoint.
	Endpoint string
	// Token is the resolved API credential.
	Token string
	// Timeout bounds one call when HTTPClient is nil. Zero means no limit.
	Timeout time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client calls operations on one endpoint with one credential.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// Result is the outcome delivered by CallAsync.
type Result struct {
	Reply *Reply
	Err   error
}

// New creates a client from cfg.
func New(cfg Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultEndpoint
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		endpoint:   endpoint,
		token:      cfg.Token,
		httpClient: httpClient,
	}
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// buildRequest encodes the request body. It is the single place where the
// envelope is assembled.
func (c *Client) buildRequest(api string, params []args.Param, fields string) ([]byte, error) {
	if c.token == "" {
		return nil, &config.CredentialMissingError{TokenPath: config.TokenPath()}
	}

	body, err := json.Marshal(Request{
		APIName: api,
		Token:   c.token,
		Params:  args.ParamsMap(params),
		Fields:  fields,
	})
	if err != nil {
		return nil, newTransportError(c.endpoint, "encode request", err)
	}
	return body, nil
}

// Call invokes api with params and returns the successful reply.
// fields optionally restricts the returned columns (comma separated).
func (c *Client) Call(ctx context.Context, api string, params []args.Param, fields string) (*Reply, error) {
	body, err := c.buildRequest(api, params, fields)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, api, body)
}

// CallAsync starts Call on a new goroutine. The channel receives exactly one
// Result and is then closed.
func (c *Client) CallAsync(ctx context.Context, api string, params []args.Param, fields string) <-chan Result {
	results := make(chan Result, 1)
	go func() {
		defer close(results)
		reply, err := c.Call(ctx, api, params, fields)
		results <- Result{Reply: reply, Err: err}
	}()
	return results
}

// CallSync is Call for callers without a context.
func (c *Client) CallSync(api string, params []args.Param, fields string) (*Reply, error) {
	return c.Call(context.Background(), api, params, fields)
}

func (c *Client) post(ctx context.Context, api string, body []byte) (*Reply, error) {
	requestID := uuid.NewString()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newTransportError(c.endpoint, "create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	logging.Debug("Client", "Calling %s at %s (request %s)", api, c.endpoint, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError(c.endpoint, "post", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError(c.endpoint, "read reply", err)
	}

	reply, decodeErr := decodeReply(data)
	if decodeErr == nil && !reply.Success() {
		// The API reports application failures in the envelope, sometimes
		// with a non-200 status.
		logging.Debug("Client", "Request %s rejected with status %d: code=%d request_id=%s",
			requestID, resp.StatusCode, reply.Code, reply.RequestID)
		return nil, &RemoteError{Code: reply.Code, Message: reply.Msg, RequestID: reply.RequestID}
	}

	if resp.StatusCode != http.StatusOK {
		logging.Debug("Client", "Request %s failed with status %d: %s", requestID, resp.StatusCode, string(data))
		return nil, newTransportError(c.endpoint, "post", fmt.Errorf("unexpected HTTP status %d", resp.StatusCode))
	}
	if decodeErr != nil {
		return nil, newTransportError(c.endpoint, "decode reply", decodeErr)
	}

	logging.Debug("Client", "Request %s answered in %s: code=%d request_id=%s",
		requestID, logging.Since(start), reply.Code, reply.RequestID)

	return reply, nil
}

// decodeReply keeps numbers as json.Number so integers beyond 2^53 survive.
func decodeReply(data []byte) (*Reply, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var reply Reply
	if err := dec.Decode(&reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
