package leasecache

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate moq -out leasecache_mocks_test.go . LocalCache CacheClient CachePipeline

// LocalCache for in memory cache (with eviction)
type LocalCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, data []byte)
	Delete(key string)
}

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK when entry is found
	LeaseGetTypeOK LeaseGetType = 1

	// LeaseGetTypeGranted when entry is not found but lease is granted
	LeaseGetTypeGranted LeaseGetType = 2

	// LeaseGetTypeRejected when entry is not found and lease is not granted
	LeaseGetTypeRejected LeaseGetType = 3
)

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	Data    []byte
	LeaseID uint64
}

// CacheClient for remote cache (like memcached)
type CacheClient interface {
	// Pipeline can NOT be shared between goroutines
	Pipeline() CachePipeline
}

// CachePipeline for batching cache requests
type CachePipeline interface {
	LeaseGet(key string) func() (LeaseGetOutput, error)
	LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error
	Delete(key string) func() error
	Finish()
}

// Loader reads the value from the backing store
type Loader func(ctx context.Context) ([]byte, error)

// Cache can be shared between goroutines
type Cache interface {
	Get(ctx context.Context, key string, load Loader) ([]byte, error)
	Invalidate(ctx context.Context, key string) error
}

// ErrLeaseWaitExhausted when the lease is still held by another client after all waits
var ErrLeaseWaitExhausted = errors.New("leasecache: lease wait exhausted")

type cacheImpl struct {
	local  LocalCache
	client CacheClient
	opts   cacheOptions
	group  singleflight.Group

	sleep func(ctx context.Context, d time.Duration) error
}

var _ Cache = &cacheImpl{}

// New creates a two level cache: local memory first, then the remote cache with leases
func New(local LocalCache, client CacheClient, options ...Option) Cache {
	return &cacheImpl{
		local:  local,
		client: client,
		opts:   newCacheOptions(options...),
		sleep:  sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Get ...
func (c *cacheImpl) Get(ctx context.Context, key string, load Loader) ([]byte, error) {
	if data, ok := c.local.Get(key); ok {
		return data, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return c.getRemote(ctx, key, load)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *cacheImpl) getRemote(ctx context.Context, key string, load Loader) ([]byte, error) {
	pipe := c.client.Pipeline()
	defer pipe.Finish()

	for retry := 0; ; retry++ {
		output, err := pipe.LeaseGet(key)()
		if err != nil {
			c.opts.logger.Warn("Lease get failed, loading from database",
				zap.String("key", key), zap.Error(err))
			return load(ctx)
		}

		switch output.Type {
		case LeaseGetTypeOK:
			c.local.Set(key, output.Data)
			return output.Data, nil

		case LeaseGetTypeGranted:
			return c.loadAndSet(ctx, pipe, key, output.LeaseID, load)
		}

		if retry >= len(c.opts.waitLeaseDurations) {
			if c.opts.failedOnWaitFinished {
				return nil, ErrLeaseWaitExhausted
			}
			return load(ctx)
		}

		if err := c.sleep(ctx, c.opts.waitLeaseDurations[retry]); err != nil {
			return nil, err
		}
	}
}

func (c *cacheImpl) loadAndSet(
	ctx context.Context, pipe CachePipeline, key string, leaseID uint64, load Loader,
) ([]byte, error) {
	data, err := load(ctx)
	if err != nil {
		return nil, err
	}

	err = pipe.LeaseSet(key, data, leaseID, c.opts.ttl)()
	if err != nil {
		c.opts.logger.Warn("Lease set failed", zap.String("key", key), zap.Error(err))
	}

	c.local.Set(key, data)
	return data, nil
}

// Invalidate removes the key from the local and the remote cache.
// Local caches of other processes keep the old value until their TTL.
func (c *cacheImpl) Invalidate(_ context.Context, key string) error {
	c.local.Delete(key)

	pipe := c.client.Pipeline()
	defer pipe.Finish()

	return pipe.Delete(key)()
}
