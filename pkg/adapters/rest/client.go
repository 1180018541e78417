// Package rest implements the remote gateway over HTTP: a typed
// request/response wrapper around the user directory service and the notes
// service. It owns no state beyond counters; transport failures are
// translated into core.TransportError at this boundary, and the notes
// listing's dual payload shape (bare array vs. page envelope) is
// normalized here so downstream code never branches on shape.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/notewire/notewire/pkg/core"
)

// DefaultBaseURL matches the local docker-compose stack.
const DefaultBaseURL = "http://localhost:8080"

// Config holds the configuration for the REST gateway.
type Config struct {
	// BaseURL addresses the API gateway fronting both services.
	// Empty means DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the transport. Nil means http.DefaultClient,
	// i.e. whatever timeout behavior the caller's context imposes.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Client implements core.Directory and core.Notes against the REST stack.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger

	mu         sync.Mutex
	requests   int
	failures   int
	lastStatus int
}

// New creates a REST gateway client.
func New(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}

	return &Client{
		baseURL: base,
		http:    hc,
		logger:  cfg.Logger,
	}
}

var _ core.Directory = (*Client)(nil)
var _ core.Notes = (*Client)(nil)

// do runs one request and decodes the response into out (when non-nil).
// Non-2xx becomes a TransportError carrying the body text, or a generic
// status message when the body is empty. 204 is success with no payload.
func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if c.logger != nil {
		c.logger.Debug("remote call", "method", method, "path", path)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.record(0, true)
		return &core.TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(resp.StatusCode, true)
		return &core.TransportError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.record(resp.StatusCode, true)
		return &core.TransportError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(data)),
		}
	}
	c.record(resp.StatusCode, false)

	if resp.StatusCode == http.StatusNoContent || out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) record(status int, failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	if failed {
		c.failures++
	}
	c.lastStatus = status
}
