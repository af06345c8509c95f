// Package router sets up all HTTP routes and middleware chains for the
// voilib web server.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"voilib/internal/handlers"
	"voilib/internal/middleware"
	"voilib/internal/routes"
)

// Options configures the router.
type Options struct {
	// APIBaseURL is allowed as a connect-src in the Content-Security-Policy.
	APIBaseURL string
	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables rate limiting.
	RateLimit int
	// Static serves /static/*; nil disables static assets.
	Static fs.FS
	// Analytics serves the search log; nil when analytics is disabled.
	Analytics *handlers.Analytics
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(opts Options, spa *handlers.SPA, health *handlers.Health) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(opts.APIBaseURL))

	// Liveness and metrics are not rate limited.
	r.Get("/health", health.Live)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if opts.RateLimit > 0 {
			r.Use(middleware.RateLimit(opts.RateLimit, time.Minute))
		}
		r.Use(middleware.QueryString)

		// Each upstream check makes a request to the API.
		r.Get("/health/upstream", health.Upstream)

		if opts.Static != nil {
			r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(opts.Static)))
		}
		r.Get("/config.json", spa.Config)

		if opts.Analytics != nil {
			r.Get("/analytics/query-history", opts.Analytics.QueryHistory)
		}

		// One route per client page; unknown paths fall through to 404.
		for _, page := range routes.All() {
			r.Get(page.Path(), spa.Page)
		}
	})

	return r
}
