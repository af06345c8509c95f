// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apiclient talks to the voilib API at the resolved base URL.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"voilib/internal/endpoint"
)

// ErrUnexpectedStatus is returned when the API answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// Client performs requests against a single voilib API endpoint.
type Client struct {
	endpoint endpoint.Endpoint
	http     *http.Client
}

// New creates a Client for ep. A nil httpClient gets a default client with
// a 10 second timeout.
func New(ep endpoint.Endpoint, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{endpoint: ep, http: httpClient}
}

// BaseURL returns the base URL every request is built on.
func (c *Client) BaseURL() string {
	return c.endpoint.BaseURL()
}

type versionResponse struct {
	Version string `json:"version"`
}

// Version returns the version reported by GET /app/version.
func (c *Client) Version(ctx context.Context) (string, error) {
	var out versionResponse
	if err := c.getJSON(ctx, "/app/version", &out); err != nil {
		return "", err
	}
	if out.Version == "" {
		return "", fmt.Errorf("api version: empty version in response")
	}
	return out.Version, nil
}

// getJSON performs a GET on path and decodes a JSON body into dst.
func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	url := c.endpoint.URL(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("api request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api http %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("api read body %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api %s: %w %d: %s", path, ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("api unmarshal %s: %w", path, err)
	}
	return nil
}
