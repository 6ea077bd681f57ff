// Package ratelimit provides the request rate limiter backing the API
// middleware.
package ratelimit

import "time"

type Config struct {
	RequestsPerMinute int
}

type RateLimiter interface {
	Allow(key string, config Config) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
