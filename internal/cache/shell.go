// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// shell.go caches the rendered SPA shell per client page. The shell only
// depends on the page and the API base URL, both fixed for the life of the
// process, so entries are safe to share between replicas that agree on the
// base URL. The base URL is part of the key for replicas that do not.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"voilib/internal/metrics"
)

const (
	// shellKeyPrefix is the Valkey key prefix for cached shells.
	shellKeyPrefix = "shell:"

	// DefaultShellTTL is how long a rendered shell stays cached.
	DefaultShellTTL = 5 * time.Minute
)

// ShellCache manages rendered shell HTML in Valkey. Errors are logged and
// reported as misses; the cache never fails a request.
type ShellCache struct {
	client    *redis.Client
	ttl       time.Duration
	namespace string
}

// NewShellCache creates a shell cache for shells rendered against apiBaseURL.
func NewShellCache(client *redis.Client, apiBaseURL string, ttl time.Duration) *ShellCache {
	if ttl == 0 {
		ttl = DefaultShellTTL
	}
	sum := sha256.Sum256([]byte(apiBaseURL))
	return &ShellCache{
		client:    client,
		ttl:       ttl,
		namespace: hex.EncodeToString(sum[:4]),
	}
}

// Key returns the full Valkey key for a page name.
func (c *ShellCache) Key(page string) string {
	return shellKeyPrefix + c.namespace + ":" + page
}

// Get retrieves a cached shell for page.
func (c *ShellCache) Get(ctx context.Context, page string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.Key(page)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ShellCacheResults.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		slog.Warn("shell cache get error", "page", page, "error", err)
		metrics.ShellCacheResults.WithLabelValues("error").Inc()
		return nil, false
	}
	metrics.ShellCacheResults.WithLabelValues("hit").Inc()
	return val, true
}

// Set stores a rendered shell with the configured TTL.
func (c *ShellCache) Set(ctx context.Context, page string, html []byte) {
	if err := c.client.Set(ctx, c.Key(page), html, c.ttl).Err(); err != nil {
		slog.Warn("shell cache set error", "page", page, "error", err)
	}
}

// InvalidateAll removes every cached shell, across all namespaces, by
// scanning for the key prefix. It returns the number of deleted keys.
func (c *ShellCache) InvalidateAll(ctx context.Context) int {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := c.client.Scan(ctx, cursor, shellKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("shell cache scan error", "error", err)
			return deleted
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("shell cache bulk delete error", "error", err)
			} else {
				deleted += len(keys)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("shell cache cleared", "deleted", deleted)
	}
	return deleted
}
