// Package ratelimit throttles write traffic against the assignment API.
package ratelimit

import "time"

// Config holds the per-window request limits. A zero limit disables the
// corresponding window.
type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// RateLimiter decides whether a caller identified by key may proceed.
type RateLimiter interface {
	Allow(key string, config Config) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
