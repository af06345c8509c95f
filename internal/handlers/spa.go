// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"voilib/internal/metrics"
	"voilib/internal/middleware"
	"voilib/internal/render"
	"voilib/internal/routes"
)

// ShellCache stores rendered shells by page name.
type ShellCache interface {
	Get(ctx context.Context, page string) ([]byte, bool)
	Set(ctx context.Context, page string, html []byte)
}

// SearchRecorder stores searches made from the query page.
type SearchRecorder interface {
	Record(ctx context.Context, text, page string) (bool, error)
}

// SPA serves the client shell for every page in the route table. It checks
// the shell cache before rendering and stores rendered results on miss.
type SPA struct {
	renderer *render.Renderer
	cache    ShellCache
	searches SearchRecorder
}

// NewSPA creates the SPA handler group. cache and searches may be nil: the
// shell is then rendered on every request and searches are not recorded.
func NewSPA(renderer *render.Renderer, cache ShellCache, searches SearchRecorder) *SPA {
	return &SPA{renderer: renderer, cache: cache, searches: searches}
}

// Page serves the shell for the route-table page at the request path.
func (s *SPA) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, ok := routes.Lookup(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	html, err := s.shell(ctx, page)
	if err != nil {
		slog.Error("render shell failed", "error", err, "page", page.String())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if page == routes.Query {
		s.recordSearch(ctx, page)
	}
	metrics.PageViews.WithLabelValues(page.String()).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(html)
}

// Config serves the client configuration as JSON for clients that load it
// separately from the shell.
func (s *SPA) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.renderer.Config(""))
}

// shell returns the rendered shell for page, from cache when possible.
func (s *SPA) shell(ctx context.Context, page routes.Page) ([]byte, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, page.String()); ok {
			return cached, nil
		}
	}

	html, err := s.renderer.Shell(page)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, page.String(), html)
	}
	return html, nil
}

// recordSearch logs the "q" parameter of a query page load. It is
// best-effort: failures are logged and never affect the response.
func (s *SPA) recordSearch(ctx context.Context, page routes.Page) {
	if s.searches == nil {
		return
	}
	text := middleware.Query(ctx).Get("q")
	if text == "" {
		return
	}

	stored, err := s.searches.Record(ctx, text, page.String())
	switch {
	case err != nil:
		slog.Warn("record search failed", "error", err, "request_id", middleware.RequestIDFrom(ctx))
		metrics.SearchesRecorded.WithLabelValues("error").Inc()
	case !stored:
		metrics.SearchesRecorded.WithLabelValues("skipped").Inc()
	default:
		metrics.SearchesRecorded.WithLabelValues("ok").Inc()
	}
}
