package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/indexed"
	"github.com/hupe1980/indexed/index"
	"github.com/hupe1980/indexed/testutil"
)

func TestKeysMembership(t *testing.T) {
	c := indexed.New[int](index.NewKeys[int]())

	k1 := c.Insert(1)
	k2 := c.Insert(2)
	c.DeleteByKey(k1)

	indexed.Query(c, func(ix *index.Keys[int], _ indexed.Env[int]) struct{} {
		assert.False(t, ix.Contains(k1))
		assert.True(t, ix.Contains(k2))
		assert.Equal(t, 1, ix.Count())
		assert.Equal(t, 1, ix.All().Len())
		return struct{}{}
	})
}

func TestKeysIgnoresUpdates(t *testing.T) {
	c := indexed.New[int](index.NewKeys[int]())

	k := c.Insert(1)
	c.AdjustByKey(k, func(v int) int { return v + 100 })

	n := indexed.Query(c, func(ix *index.Keys[int], _ indexed.Env[int]) int {
		return ix.Count()
	})
	assert.Equal(t, 1, n)
}

func TestKeysAgainstReference(t *testing.T) {
	c := indexed.New[int](index.NewKeys[int]())

	testutil.CheckAgainstReference(t, 389, 300, c,
		func(r *testutil.RNG) int { return r.Intn(100) },
		func(t *testing.T, model map[indexed.Key]int) {
			indexed.Query(c, func(ix *index.Keys[int], _ indexed.Env[int]) struct{} {
				assert.Equal(t, len(model), ix.Count())
				assert.Equal(t, len(model), ix.All().Len())
				for k := range model {
					assert.True(t, ix.Contains(k))
				}
				return struct{}{}
			})
		},
	)
}
