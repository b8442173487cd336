package cacheclient

import (
	"time"

	"github.com/QuangTung97/go-memcache/memcache"

	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/leasecache"
)

// Client wraps a memcached client for the lease cache
type Client struct {
	client *memcache.Client
}

// Pipeline ...
type Pipeline struct {
	pipe *memcache.Pipeline
}

var _ leasecache.CacheClient = &Client{}

var _ leasecache.CachePipeline = Pipeline{}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// Pipeline ...
func (c *Client) Pipeline() leasecache.CachePipeline {
	return Pipeline{
		pipe: c.client.Pipeline(),
	}
}

// LeaseGet gets the value or acquires a lease. The lease is granted only to the first client (flag W),
// other clients see the item with flag Z until the lease is set or expired.
func (p Pipeline) LeaseGet(key string) func() (leasecache.LeaseGetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{
		N:   5,
		CAS: true,
	})
	return func() (leasecache.LeaseGetOutput, error) {
		resp, err := fn()
		if err != nil {
			return leasecache.LeaseGetOutput{}, err
		}
		if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
			return leasecache.LeaseGetOutput{
				Type: leasecache.LeaseGetTypeRejected,
			}, nil
		}

		if resp.Flags&memcache.MGetFlagW != 0 {
			return leasecache.LeaseGetOutput{
				Type:    leasecache.LeaseGetTypeGranted,
				LeaseID: resp.CAS,
			}, nil
		}

		return leasecache.LeaseGetOutput{
			Type: leasecache.LeaseGetTypeOK,
			Data: resp.Data,
		}, nil
	}
}

// LeaseSet stores the value only if the lease is still held
func (p Pipeline) LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error {
	fn := p.pipe.MSet(key, value, memcache.MSetOptions{
		CAS: leaseID,
		TTL: ttl,
	})
	return func() error {
		_, err := fn()
		return err
	}
}

// Delete ...
func (p Pipeline) Delete(key string) func() error {
	fn := p.pipe.MDel(key, memcache.MDelOptions{})
	return func() error {
		_, err := fn()
		return err
	}
}

// Finish ...
func (p Pipeline) Finish() {
	p.pipe.Finish()
}
