// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the response cache for the public read API, with
// in-memory and Redis backends behind one interface.
package cache

import (
	"context"
	"time"
)

// Cache is the interface both backends implement. Values are raw bytes so
// the same interface serves memory and Redis. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns the cached value, or ErrCacheMiss if absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL uses the default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Error is a sentinel error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrCacheMiss indicates the key was not found or has expired.
const ErrCacheMiss Error = "cache miss"

// Config selects and configures a cache backend.
type Config struct {
	// RedisURL chooses the Redis backend when non-empty, e.g.
	// redis://localhost:6379/0. Empty falls back to the in-memory cache.
	RedisURL string

	// Prefix is prepended to every Redis key.
	Prefix string

	// DefaultTTL applies when Set receives a zero TTL.
	DefaultTTL time.Duration
}

// New builds a cache from the config: Redis when a URL is set, otherwise
// an in-memory cache with a background janitor.
func New(cfg Config) (Cache, error) {
	if cfg.DefaultTTL == 0 {
		cfg.DefaultTTL = 5 * time.Minute
	}
	if cfg.RedisURL != "" {
		return NewRedis(cfg.RedisURL, cfg.Prefix, cfg.DefaultTTL)
	}
	return NewMemory(cfg.DefaultTTL, time.Minute), nil
}
