package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"voilib/internal/apiclient"
)

// VersionProber reports the version of the upstream voilib API.
type VersionProber interface {
	BaseURL() string
	Version(ctx context.Context) (string, error)
}

// Health serves liveness and upstream checks.
type Health struct {
	api     VersionProber
	timeout time.Duration
}

// NewHealth creates the health handler group.
func NewHealth(api VersionProber) *Health {
	return &Health{api: api, timeout: 3 * time.Second}
}

// Live reports that the server is up.
func (h *Health) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Upstream reports whether the voilib API at the resolved base URL answers.
func (h *Health) Upstream(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	version, err := h.api.Version(ctx)
	if err != nil {
		slog.Warn("upstream health check failed", "api_url", h.api.BaseURL(), "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"status":  "unavailable",
			"api_url": h.api.BaseURL(),
			"error":   upstreamError(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"api_url": h.api.BaseURL(),
		"version": version,
	})
}

// upstreamError maps a probe failure to a short reason for the response.
// The full error only goes to the log.
func upstreamError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, apiclient.ErrUnexpectedStatus):
		return "unexpected status"
	default:
		return "request failed"
	}
}
