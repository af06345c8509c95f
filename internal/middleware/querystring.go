package middleware

import (
	"context"
	"net/http"
	"net/url"

	"voilib/internal/querystring"
)

type queryKey struct{}

// QueryString parses the request's raw querystring once and attaches the
// result to the request context. Handlers read it back with Query.
func QueryString(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := querystring.Parse(r.URL.RawQuery)
		ctx := context.WithValue(r.Context(), queryKey{}, values)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Query returns the parsed querystring attached by QueryString. It never
// returns nil.
func Query(ctx context.Context) url.Values {
	if v, ok := ctx.Value(queryKey{}).(url.Values); ok {
		return v
	}
	return url.Values{}
}
