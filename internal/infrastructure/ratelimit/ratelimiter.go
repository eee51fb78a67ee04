package ratelimit

import "context"

// Config bounds the number of requests a single client may make inside a
// sliding window.
type Config struct {
	Requests      int
	WindowSeconds int
}

// RateLimiter answers whether a keyed client is still within its budget.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config Config) (bool, error)
	Reset(ctx context.Context, key string) error
}
