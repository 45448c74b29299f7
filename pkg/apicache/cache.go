// Package apicache provides the short-lived in-memory response cache
// backing the GitHub API client.
package apicache

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/maypok86/otter/v2"
)

// Entry is one cached response body with its expiry deadline.
type Entry struct {
	ExpiresAt time.Time
	Data      []byte
}

// Cache is a process-lifetime key -> {value, timestamp} store. Entries
// expire after the configured TTL, checked lazily on read rather than
// swept proactively.
type Cache struct {
	cache  *otter.Cache[string, Entry]
	logger *slog.Logger
	now    func() time.Time
	ttl    time.Duration
}

// New creates a cache with the given TTL. The clock is injectable so tests
// can control expiry without real delays.
func New(ttl time.Duration, now func() time.Time, logger *slog.Logger) *Cache {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	cache := otter.Must(&otter.Options[string, Entry]{
		MaximumSize:      10_000,
		InitialCapacity:  1_000,
		ExpiryCalculator: otter.ExpiryWriting[string, Entry](ttl),
	})
	return &Cache{cache: cache, logger: logger, now: now, ttl: ttl}
}

func hashKey(key string) string {
	h := sha256.New()
	h.Write([]byte(key))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached value for key if present and not yet expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	entry, found := c.cache.GetIfPresent(hashKey(key))
	if !found {
		c.logger.Debug("cache miss", "key", key, "reason", "not_found")
		return nil, false
	}

	// Otter expires on its own clock; double-check against ours so an
	// injected clock sees consistent behavior.
	if c.now().After(entry.ExpiresAt) {
		c.logger.Debug("cache miss", "key", key, "reason", "expired", "expired_at", entry.ExpiresAt)
		c.cache.Invalidate(hashKey(key))
		return nil, false
	}

	return entry.Data, true
}

// Set stores data under key for the cache's TTL.
func (c *Cache) Set(key string, data []byte) {
	entry := Entry{
		Data:      data,
		ExpiresAt: c.now().Add(c.ttl),
	}
	c.cache.Set(hashKey(key), entry)
	c.logger.Debug("cache set", "key", key, "expires_at", entry.ExpiresAt, "size", len(data))
}

// InvalidateAll drops every entry. Called when the auth state changes,
// since the token is part of cache-key semantics.
func (c *Cache) InvalidateAll() {
	dropped := 0
	c.cache.All()(func(key string, _ Entry) bool {
		c.cache.Invalidate(key)
		dropped++
		return true
	})
	c.logger.Debug("cache invalidated", "entries", dropped)
}

// Len reports the approximate number of live entries.
func (c *Cache) Len() int {
	return int(c.cache.EstimatedSize())
}
