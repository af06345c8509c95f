// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared fakes for the handler tests.
package handlers

import (
	"context"
	"errors"
	"sync"

	"voilib/internal/apiclient"
	"voilib/internal/cache"
	"voilib/internal/store"
)

var (
	_ ShellCache     = (*cache.ShellCache)(nil)
	_ SearchRecorder = (*store.SearchStore)(nil)
	_ VersionProber  = (*apiclient.Client)(nil)
	_ SearchHistory  = (*store.SearchStore)(nil)
)

// memoryCache is an in-memory ShellCache that counts lookups.
type memoryCache struct {
	mu     sync.Mutex
	items  map[string][]byte
	hits   int
	misses int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, page string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[page]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

func (c *memoryCache) Set(_ context.Context, page string, html []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[page] = html
}

// recordedSearch is one call to fakeRecorder.Record.
type recordedSearch struct {
	Text string
	Page string
}

// fakeRecorder collects searches instead of writing them to PostgreSQL.
type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedSearch
	err   error
}

func (f *fakeRecorder) Record(_ context.Context, text, page string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedSearch{Text: text, Page: page})
	if f.err != nil {
		return false, f.err
	}
	return store.NormalizeSearch(text) != "", nil
}

// fakeProber answers version checks without a network round trip.
type fakeProber struct {
	version string
	err     error
}

func (f fakeProber) BaseURL() string { return "http://localhost:81" }

func (f fakeProber) Version(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.version, f.err
}

// fakeHistory returns a fixed search log and remembers the requested limit.
type fakeHistory struct {
	mu        sync.Mutex
	searches  []store.Search
	err       error
	lastLimit int
}

func (f *fakeHistory) Recent(_ context.Context, limit int) ([]store.Search, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.searches) {
		return f.searches[:limit], nil
	}
	return f.searches, nil
}

var errUpstreamDown = errors.New("connection refused")
