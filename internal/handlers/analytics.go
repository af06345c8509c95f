// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"voilib/internal/middleware"
	"voilib/internal/store"
)

const (
	// DefaultHistoryLimit is the number of searches returned when the
	// request does not set "limit".
	DefaultHistoryLimit = 50
	// MaxHistoryLimit caps the "limit" parameter.
	MaxHistoryLimit = 200
)

// SearchHistory lists recorded searches, newest first.
type SearchHistory interface {
	Recent(ctx context.Context, limit int) ([]store.Search, error)
}

// Analytics serves the recorded search log.
type Analytics struct {
	searches SearchHistory
}

// NewAnalytics creates the analytics handler group.
func NewAnalytics(searches SearchHistory) *Analytics {
	return &Analytics{searches: searches}
}

// historyResponse is the body of GET /analytics/query-history.
type historyResponse struct {
	Items []store.Search `json:"items"`
	Limit int            `json:"limit"`
}

// QueryHistory returns the latest recorded searches. The "limit" query
// parameter defaults to DefaultHistoryLimit and is capped at MaxHistoryLimit.
func (a *Analytics) QueryHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, ok := historyLimit(middleware.Query(ctx).Get("limit"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
		return
	}

	items, err := a.searches.Recent(ctx, limit)
	if err != nil {
		slog.Error("list searches failed", "error", err, "request_id", middleware.RequestIDFrom(ctx))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	if items == nil {
		items = []store.Search{}
	}

	writeJSON(w, http.StatusOK, historyResponse{Items: items, Limit: limit})
}

// historyLimit parses the limit parameter. An empty value selects the default.
func historyLimit(raw string) (int, bool) {
	if raw == "" {
		return DefaultHistoryLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return min(n, MaxHistoryLimit), true
}
