package leasecache

import (
	"time"

	"go.uber.org/zap"
)

type cacheOptions struct {
	waitLeaseDurations   []time.Duration
	failedOnWaitFinished bool
	ttl                  uint32
	logger               *zap.Logger
}

func defaultCacheOptions() cacheOptions {
	return cacheOptions{
		waitLeaseDurations: []time.Duration{
			10 * time.Millisecond,
			20 * time.Millisecond,
			50 * time.Millisecond,
		},
		failedOnWaitFinished: false,
		ttl:                  300,
		logger:               zap.NewNop(),
	}
}

func newCacheOptions(options ...Option) cacheOptions {
	opts := defaultCacheOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *cacheOptions)

// WithWaitLeaseDurations sleeps between retries when another client holds the lease
func WithWaitLeaseDurations(durations []time.Duration) Option {
	return func(opts *cacheOptions) {
		opts.waitLeaseDurations = durations
	}
}

// WithFailedOnWaitFinished failed when waitLeaseDurations all waits finished, otherwise load from DB without caching
func WithFailedOnWaitFinished(b bool) Option {
	return func(opts *cacheOptions) {
		opts.failedOnWaitFinished = b
	}
}

// WithTTL in seconds for entries in the remote cache, 0 means no expiry
func WithTTL(ttl uint32) Option {
	return func(opts *cacheOptions) {
		opts.ttl = ttl
	}
}

// WithLogger ...
func WithLogger(logger *zap.Logger) Option {
	return func(opts *cacheOptions) {
		opts.logger = logger
	}
}
