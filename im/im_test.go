package im_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/indexed"
	"github.com/hupe1980/indexed/im"
	"github.com/hupe1980/indexed/index"
	"github.com/hupe1980/indexed/testutil"
)

func TestHashTableLookup(t *testing.T) {
	c := indexed.New[string](im.NewHashTable[string]())

	c.InsertAll("red", "blue", "red")

	indexed.Query(c, func(ix *im.HashTable[string], _ indexed.Env[string]) struct{} {
		assert.True(t, ix.Contains("red"))
		assert.False(t, ix.Contains("green"))
		assert.Equal(t, 2, ix.GetAll("red").Len())
		assert.Equal(t, 2, ix.CountDistinct())
		return struct{}{}
	})
}

func TestHashTableRemoveEvictsBucket(t *testing.T) {
	c := indexed.New[string](im.NewHashTable[string]())

	k := c.Insert("red")
	c.DeleteByKey(k)

	n := indexed.Query(c, func(ix *im.HashTable[string], _ indexed.Env[string]) int {
		return ix.CountDistinct()
	})
	assert.Equal(t, 0, n)
}

func TestBTreeOrderedQueries(t *testing.T) {
	c := indexed.New[int](im.NewBTree[int]())

	c.InsertAll(5, 1, 3, 3, 9)

	indexed.Query(c, func(ix *im.BTree[int], _ indexed.Env[int]) struct{} {
		v, _, ok := ix.MinOne()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, _, ok = ix.MaxOne()
		require.True(t, ok)
		assert.Equal(t, 9, v)

		assert.Equal(t, 4, ix.CountDistinct())
		assert.Equal(t, 3, ix.Range(3, 9).Len())
		return struct{}{}
	})
}

func TestBTreeStartsWith(t *testing.T) {
	c := indexed.New[string](im.NewBTree[string]())

	c.InsertAll("apple", "app", "banana", "apricot")

	got := indexed.QueryAll(c, func(ix *im.BTree[string]) indexed.Distinct {
		return im.StartsWith(ix, "app")
	})
	assert.ElementsMatch(t, []string{"app", "apple"}, got)
}

func TestKeysMembership(t *testing.T) {
	c := indexed.New[int](im.NewKeys[int]())

	k1 := c.Insert(1)
	c.Insert(2)
	c.DeleteByKey(k1)

	indexed.Query(c, func(ix *im.Keys[int], _ indexed.Env[int]) struct{} {
		assert.False(t, ix.Contains(k1))
		assert.Equal(t, 1, ix.Count())
		assert.Equal(t, 1, ix.All().Len())
		return struct{}{}
	})
}

func TestGroupedEviction(t *testing.T) {
	c := indexed.New[string](im.NewGrouped(
		func(s string) byte { return s[0] },
		func() *im.Keys[string] { return im.NewKeys[string]() },
	))

	ka1 := c.Insert("apple")
	ka2 := c.Insert("apricot")
	c.Insert("banana")

	groupCount := func() int {
		return indexed.Query(c, func(ix *im.Grouped[string, byte, *im.Keys[string]], _ indexed.Env[string]) int {
			return ix.Len()
		})
	}

	assert.Equal(t, 2, groupCount())

	c.DeleteByKey(ka1)
	c.DeleteByKey(ka2)
	assert.Equal(t, 1, groupCount())

	indexed.Query(c, func(ix *im.Grouped[string, byte, *im.Keys[string]], _ indexed.Env[string]) struct{} {
		assert.Equal(t, 0, ix.Get('a').Count())
		assert.Equal(t, 1, ix.Get('b').Count())
		return struct{}{}
	})
}

func TestGroupedUpdateMovesBetweenGroups(t *testing.T) {
	c := indexed.New[string](im.NewGrouped(
		func(s string) byte { return s[0] },
		func() *im.Keys[string] { return im.NewKeys[string]() },
	))

	k := c.Insert("apple")
	c.AdjustByKey(k, func(string) string { return "banana" })

	indexed.Query(c, func(ix *im.Grouped[string, byte, *im.Keys[string]], _ indexed.Env[string]) struct{} {
		assert.Equal(t, 1, ix.Len())
		assert.Equal(t, 1, ix.Get('b').Count())
		return struct{}{}
	})
}

func TestHashTableCloneIsolation(t *testing.T) {
	c := indexed.New[string](
		im.NewHashTable[string](),
		indexed.WithStore[string](im.NewStore[string]()),
	)
	c.Insert("red")

	clone := indexed.ShallowClone(c)
	clone.Insert("green")
	c.Insert("blue")

	indexed.Query(c, func(ix *im.HashTable[string], _ indexed.Env[string]) struct{} {
		assert.True(t, ix.Contains("blue"))
		assert.False(t, ix.Contains("green"))
		return struct{}{}
	})
	indexed.Query(clone, func(ix *im.HashTable[string], _ indexed.Env[string]) struct{} {
		assert.True(t, ix.Contains("green"))
		assert.False(t, ix.Contains("blue"))
		return struct{}{}
	})
}

func TestGroupedCloneIsolation(t *testing.T) {
	c := indexed.New[string](
		im.NewGrouped(
			func(s string) byte { return s[0] },
			func() *im.Keys[string] { return im.NewKeys[string]() },
		),
		indexed.WithStore[string](im.NewStore[string]()),
	)
	c.Insert("apple")

	clone := indexed.ShallowClone(c)
	clone.Insert("avocado")

	n := indexed.Query(c, func(ix *im.Grouped[string, byte, *im.Keys[string]], _ indexed.Env[string]) int {
		return ix.Get('a').Count()
	})
	assert.Equal(t, 1, n)

	n = indexed.Query(clone, func(ix *im.Grouped[string, byte, *im.Keys[string]], _ indexed.Env[string]) int {
		return ix.Get('a').Count()
	})
	assert.Equal(t, 2, n)
}

func TestMutableIndexWithPersistentKeySets(t *testing.T) {
	// The im key set plugs into the mutable index family as a backing.
	c := indexed.New[string](index.NewHashTable[string](index.WithKeySet(im.NewKeySet)))

	c.InsertAll("x", "y", "x")

	got := indexed.QueryAll(c, func(ix *index.HashTable[string]) indexed.Distinct {
		return ix.GetAll("x")
	})
	assert.Len(t, got, 2)
}

func TestHashTableAgainstReference(t *testing.T) {
	c := indexed.New[int](im.NewHashTable[int]())

	testutil.CheckAgainstReference(t, 577, 400, c,
		func(r *testutil.RNG) int { return r.Intn(10) },
		func(t *testing.T, model map[indexed.Key]int) {
			counts := make(map[int]int)
			for _, v := range model {
				counts[v]++
			}
			indexed.Query(c, func(ix *im.HashTable[int], _ indexed.Env[int]) struct{} {
				assert.Equal(t, len(counts), ix.CountDistinct())
				for v, n := range counts {
					assert.Equal(t, n, ix.GetAll(v).Len())
				}
				return struct{}{}
			})
		},
	)
}

func TestKeysAgainstReference(t *testing.T) {
	c := indexed.New[int](im.NewKeys[int]())

	testutil.CheckAgainstReference(t, 811, 300, c,
		func(r *testutil.RNG) int { return r.Intn(100) },
		func(t *testing.T, model map[indexed.Key]int) {
			indexed.Query(c, func(ix *im.Keys[int], _ indexed.Env[int]) struct{} {
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

func TestGroupedAgainstReference(t *testing.T) {
	c := indexed.New[string](im.NewGrouped(
		func(s string) byte { return s[0] },
		func() *im.Keys[string] { return im.NewKeys[string]() },
	))

	testutil.CheckAgainstReference(t, 919, 400, c,
		func(r *testutil.RNG) string { return r.String(r.IntRange(1, 5)) },
		func(t *testing.T, model map[indexed.Key]string) {
			sizes := make(map[byte]int)
			for _, v := range model {
				sizes[v[0]]++
			}
			indexed.Query(c, func(ix *im.Grouped[string, byte, *im.Keys[string]], _ indexed.Env[string]) struct{} {
				assert.Equal(t, len(sizes), ix.Len())
				for g, n := range sizes {
					assert.Equal(t, n, ix.Get(g).Count())
				}
				return struct{}{}
			})
		},
	)
}

func TestBTreeAgainstReference(t *testing.T) {
	c := indexed.New[int](im.NewBTree[int]())

	testutil.CheckAgainstReference(t, 271, 300, c,
		func(r *testutil.RNG) int { return r.Intn(50) },
		func(t *testing.T, model map[indexed.Key]int) {
			live := make([]int, 0, len(model))
			for _, v := range model {
				live = append(live, v)
			}
			sort.Ints(live)

			indexed.Query(c, func(ix *im.BTree[int], _ indexed.Env[int]) struct{} {
				if len(live) == 0 {
					_, _, ok := ix.MinOne()
					assert.False(t, ok)
					return struct{}{}
				}
				v, _, ok := ix.MinOne()
				require.True(t, ok)
				assert.Equal(t, live[0], v)

				v, _, ok = ix.MaxOne()
				require.True(t, ok)
				assert.Equal(t, live[len(live)-1], v)

				want := 0
				for _, n := range live {
					if n >= 10 && n < 30 {
						want++
					}
				}
				assert.Equal(t, want, ix.Range(10, 30).Len())
				return struct{}{}
			})
		},
	)
}
