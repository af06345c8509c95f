package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voilib/internal/apiclient"
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestHealthLive(t *testing.T) {
	h := NewHealth(fakeProber{})

	rr := httptest.NewRecorder()
	h.Live(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}
	if body := decodeBody(t, rr); body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestHealthUpstream(t *testing.T) {
	t.Run("upstream answers", func(t *testing.T) {
		h := NewHealth(fakeProber{version: "0.4.2"})

		rr := httptest.NewRecorder()
		h.Upstream(rr, httptest.NewRequest(http.MethodGet, "/health/upstream", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		body := decodeBody(t, rr)
		if body["version"] != "0.4.2" {
			t.Errorf("version: got %q", body["version"])
		}
		if body["api_url"] != "http://localhost:81" {
			t.Errorf("api_url: got %q", body["api_url"])
		}
	})

	failures := []struct {
		name string
		err  error
		want string
	}{
		{name: "connection refused", err: errUpstreamDown, want: "request failed"},
		{name: "timeout", err: fmt.Errorf("api http /app/version: %w", context.DeadlineExceeded), want: "timeout"},
		{
			name: "error status with body",
			err:  fmt.Errorf("api /app/version: %w 500: %s", apiclient.ErrUnexpectedStatus, strings.Repeat("x", 4096)),
			want: "unexpected status",
		},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(fakeProber{err: tt.err})

			rr := httptest.NewRecorder()
			h.Upstream(rr, httptest.NewRequest(http.MethodGet, "/health/upstream", nil))

			if rr.Code != http.StatusBadGateway {
				t.Fatalf("status: got %d, want 502", rr.Code)
			}
			body := decodeBody(t, rr)
			if body["status"] != "unavailable" {
				t.Errorf("status: got %q", body["status"])
			}
			if body["error"] != tt.want {
				t.Errorf("error: got %q, want %q", body["error"], tt.want)
			}
		})
	}
}
