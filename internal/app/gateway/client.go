// internal/app/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client is the typed HTTP client for the external internship REST service.
// It owns no state beyond the base URL and transport: no retries, no caching.
// Every call is a single request/response unit; consistency across
// concurrent writers is the service's problem, not ours.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Config carries the settings BuildHandler reads from AppConfig.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// New constructs a Client. A zero Timeout falls back to 15s, which also
// serves as the only client-side deadline the dashboard enforces.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// BaseURL returns the configured service origin.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle upstream connections. Called from the shutdown hook.
func (c *Client) Close() { c.http.CloseIdleConnections() }

// envelope is the `{success, message, data}` wrapper the service puts
// around every response body. Login additionally carries token and user
// at the top level.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// roundTrip issues one request and returns the raw body and status. token
// may be empty for the unauthenticated endpoints (login, register, getuser).
// Transport failures come back as KindNetwork.
func (c *Client) roundTrip(ctx context.Context, method, path, token string, body any) ([]byte, int, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err))
		return nil, 0, netError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, netError(err)
	}

	c.log.Debug("upstream request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", reqID),
		zap.Duration("elapsed", time.Since(start)))

	return raw, resp.StatusCode, nil
}

// do issues one request and unwraps the `{success, message, data}` envelope.
//
// Error contract: transport failures come back as KindNetwork, 401/403 as
// KindAuth, 400/422 as KindValidation, everything else unsuccessful as
// KindServer. The raw data payload is returned for the caller to decode.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (json.RawMessage, error) {
	raw, status, err := c.roundTrip(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body on an error status still classifies by status.
		_ = json.Unmarshal(raw, &env)
	}

	if status < 200 || status > 299 {
		return nil, classify(status, env.Message)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "the internship service rejected the request"
		}
		return nil, &Error{Kind: KindServer, Message: msg, Status: status}
	}
	return env.Data, nil
}

// get issues an authenticated GET and decodes data into out.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// post issues an authenticated POST and decodes data into out when out is
// non-nil.
func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	data, err := c.do(ctx, http.MethodPost, path, token, body)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *Client) put(ctx context.Context, path, token string, body, out any) error {
	data, err := c.do(ctx, http.MethodPut, path, token, body)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	_, err := c.do(ctx, http.MethodDelete, path, token, nil)
	return err
}

func decode(data json.RawMessage, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindServer, Message: "unexpected response from the internship service", Err: err}
	}
	return nil
}

// pathEscape keeps record-ID path segments safe to splice into URLs.
func pathEscape(id string) string { return url.PathEscape(id) }

// Ping checks reachability of the service for the health endpoint. It hits
// the public user listing and discards the body; any transport failure
// means "unreachable".
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/getuser", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return netError(err)
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
	resp.Body.Close()
	return nil
}
