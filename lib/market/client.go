// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/quad-market/quad/lib/clock"
	"github.com/quad-market/quad/lib/netutil"
)

// defaultBaseURL is the local development backend address used when no
// base URL is configured.
const defaultBaseURL = "http://localhost:8000"

// Config holds configuration for creating a marketplace API Client.
type Config struct {
	// BaseURL is the root URL for API requests. Defaults to
	// "http://localhost:8000", the local development backend.
	BaseURL string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock provides time operations for request duration logging.
	// Defaults to clock.Real(). Inject clock.Fake() in tests for
	// deterministic behavior.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed marketplace API client. One instance is safe for
// concurrent use. The client carries no authentication state: the
// backend identifies actors by the explicit *_id fields each operation
// sends, so there are no tokens to attach or refresh.
type Client struct {
	baseURL    string
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient creates a marketplace API client from the given
// configuration. Returns an error if the base URL is not absolute.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("market: base URL must be absolute (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		clock:      clk,
		logger:     logger,
	}, nil
}

// BaseURL returns the resolved backend base URL.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// do executes one backend request. The path is relative to the base URL
// (e.g. "/items/search"). A non-nil requestBody is JSON-encoded and
// sent with Content-Type: application/json. Returns the raw response
// body on 2xx; on any other status returns an *APIError built from the
// body. There are no retries and no client-side timeout — cancellation
// is the caller's context.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	url := client.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("market: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("market: creating request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	start := client.clock.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("market: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("market: reading response body: %w", err)
	}

	client.logger.Debug("backend request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"duration", client.clock.Now().Sub(start),
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response.StatusCode, body)
	}

	return body, nil
}

// decodeBody unmarshals a response body into result. A body that is
// empty or not valid JSON is treated as an empty object — result keeps
// its zero value and no error is returned. This matches the backend's
// occasional empty success bodies.
func decodeBody(body []byte, result any) error {
	if result == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if err := json.Unmarshal(trimmed, result); err != nil {
		// Tolerated: treat the unparseable body as an empty mapping.
		return nil
	}
	return nil
}

// get is a convenience method for GET requests that return JSON.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeBody(body, result)
}

// post is a convenience method for POST requests that return JSON.
func (client *Client) post(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	return decodeBody(body, result)
}

// patch is a convenience method for PATCH requests that return JSON.
func (client *Client) patch(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPatch, path, requestBody)
	if err != nil {
		return err
	}
	return decodeBody(body, result)
}

// Health checks backend reachability via GET /. The returned payload is
// whatever status object the backend reports.
func (client *Client) Health(ctx context.Context) (map[string]any, error) {
	var status map[string]any
	if err := client.get(ctx, "/", &status); err != nil {
		return nil, fmt.Errorf("checking backend health: %w", err)
	}
	return status, nil
}
