package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/indexed"
	"github.com/hupe1980/indexed/index"
	"github.com/hupe1980/indexed/testutil"
)

func TestHashTableLookup(t *testing.T) {
	c := indexed.New[string](index.NewHashTable[string]())

	c.InsertAll("red", "blue", "red")

	assert.True(t, indexed.Query(c, func(ix *index.HashTable[string], _ indexed.Env[string]) bool {
		return ix.Contains("red")
	}))
	assert.False(t, indexed.Query(c, func(ix *index.HashTable[string], _ indexed.Env[string]) bool {
		return ix.Contains("green")
	}))

	got := indexed.QueryAll(c, func(ix *index.HashTable[string]) indexed.Distinct {
		return ix.GetAll("red")
	})
	assert.Len(t, got, 2)

	n := indexed.Query(c, func(ix *index.HashTable[string], _ indexed.Env[string]) int {
		return ix.CountDistinct()
	})
	assert.Equal(t, 2, n)
}

func TestHashTableUpdateMovesBuckets(t *testing.T) {
	c := indexed.New[string](index.NewHashTable[string]())

	k := c.Insert("red")
	c.AdjustByKey(k, func(string) string { return "blue" })

	assert.False(t, indexed.Query(c, func(ix *index.HashTable[string], _ indexed.Env[string]) bool {
		return ix.Contains("red")
	}))

	got, ok := indexed.QueryOne(c, func(ix *index.HashTable[string]) (indexed.Key, bool) {
		return ix.GetOne("blue")
	})
	require.True(t, ok)
	assert.Equal(t, "blue", got)
}

func TestHashTableRemoveEvictsBucket(t *testing.T) {
	c := indexed.New[string](index.NewHashTable[string]())

	k := c.Insert("red")
	c.DeleteByKey(k)

	n := indexed.Query(c, func(ix *index.HashTable[string], _ indexed.Env[string]) int {
		return ix.CountDistinct()
	})
	assert.Equal(t, 0, n)
}

func TestHashTableBitmapBacking(t *testing.T) {
	c := indexed.New[int](index.NewHashTable[int](index.WithKeySet(indexed.NewBitmapKeySet)))

	c.InsertAll(1, 2, 1, 1)

	got := indexed.QueryAll(c, func(ix *index.HashTable[int]) indexed.Distinct {
		return ix.GetAll(1)
	})
	assert.Len(t, got, 3)
}

func TestHashTableAgainstReference(t *testing.T) {
	c := indexed.New[int](index.NewHashTable[int]())

	testutil.CheckAgainstReference(t, 4711, 400, c,
		func(r *testutil.RNG) int { return r.Intn(10) },
		func(t *testing.T, model map[indexed.Key]int) {
			counts := make(map[int]int)
			for _, v := range model {
				counts[v]++
			}
			indexed.Query(c, func(ix *index.HashTable[int], _ indexed.Env[int]) struct{} {
				assert.Equal(t, len(counts), ix.CountDistinct())
				for v, n := range counts {
					assert.Equal(t, n, ix.GetAll(v).Len())
				}
				return struct{}{}
			})
		},
	)
}
