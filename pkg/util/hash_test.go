package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashFunc__Stable(t *testing.T) {
	assert.Equal(t, HashFunc("shop01/promo01"), HashFunc("shop01/promo01"))
	assert.NotEqual(t, HashFunc("shop01/promo01"), HashFunc("shop01/promo02"))
}

func TestShard(t *testing.T) {
	assert.Equal(t, 0, Shard("any", 0))
	assert.Equal(t, 0, Shard("any", 1))

	for _, key := range []string{"a", "b", "shop01/promo01", "shop02/promo09"} {
		n := Shard(key, 4)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 4)
		assert.Equal(t, n, Shard(key, 4))
	}
}
