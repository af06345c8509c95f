// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageViews counts shell responses served per client page.
	PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voilib_web_page_views_total",
		Help: "Total number of SPA shell responses served, by page",
	}, []string{"page"})

	// ShellCacheResults counts shell cache lookups by outcome (hit, miss).
	ShellCacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voilib_web_shell_cache_total",
		Help: "Shell cache lookups by result",
	}, []string{"result"})

	// HTTPRequests counts every HTTP request by method and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voilib_web_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "status"})

	// HTTPDuration tracks request latency.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "voilib_web_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// SearchesRecorded counts search log writes by outcome (ok, error, skipped).
	SearchesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voilib_web_searches_recorded_total",
		Help: "Search log writes by result",
	}, []string{"result"})
)
