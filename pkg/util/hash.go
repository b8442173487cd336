package util

import "github.com/twmb/murmur3"

// HashFunc ...
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

// Shard picks a stable slot in [0, n) for the key
func Shard(key string, n int) int {
	if n <= 1 {
		return 0
	}
	return int(HashFunc(key) % uint32(n))
}
