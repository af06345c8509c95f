// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/url"
)

// SecureHeaders adds security-related HTTP headers to every response. The
// client is allowed to open connections to its own origin and to the origin
// of apiBaseURL; scripts, styles and images only load from our own origin.
func SecureHeaders(apiBaseURL string) func(http.Handler) http.Handler {
	csp := contentSecurityPolicy(apiBaseURL)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()

			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "SAMEORIGIN")
			h.Set("X-XSS-Protection", "0")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "interest-cohort=()")
			h.Set("Content-Security-Policy", csp)

			next.ServeHTTP(w, r)
		})
	}
}

// contentSecurityPolicy builds the CSP header value. An API base URL that
// does not parse to scheme://host adds nothing to connect-src.
func contentSecurityPolicy(apiBaseURL string) string {
	connect := "'self'"
	if u, err := url.Parse(apiBaseURL); err == nil && u.Scheme != "" && u.Host != "" {
		connect += " " + u.Scheme + "://" + u.Host
	}
	return "default-src 'self'; connect-src " + connect +
		"; img-src 'self' data: https:; style-src 'self' 'unsafe-inline'; frame-ancestors 'self'"
}
