package memtable

import (
	"time"

	"github.com/coocood/freecache"
)

// MemTable is an in process cache with eviction, entries may disappear at any time
type MemTable struct {
	cache *freecache.Cache
	ttl   time.Duration
}

// New creates freecache with size in bytes, every entry expires after ttl
func New(size int, ttl time.Duration) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
		ttl:   ttl,
	}
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set ...
func (m *MemTable) Set(key string, data []byte) {
	expireSeconds := int(m.ttl / time.Second)
	if expireSeconds <= 0 {
		expireSeconds = 1
	}
	_ = m.cache.Set([]byte(key), data, expireSeconds)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}
