package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/indexed"
	"github.com/hupe1980/indexed/index"
)

type person struct {
	Name string
	Age  int
}

func TestPremapProjectsField(t *testing.T) {
	c := indexed.New[person](index.Premap(func(p person) int { return p.Age }, index.NewBTree[int]()))

	c.InsertAll(
		person{Name: "alice", Age: 30},
		person{Name: "bob", Age: 25},
		person{Name: "carol", Age: 35},
	)

	oldest, ok := indexed.QueryOne(c, func(ix *index.PremapIndex[person, int, *index.BTree[int]]) (indexed.Key, bool) {
		_, k, ok := ix.Inner().MaxOne()
		return k, ok
	})
	require.True(t, ok)
	assert.Equal(t, "carol", oldest.Name)
}

func TestPremapForwardsUpdates(t *testing.T) {
	c := indexed.New[person](index.Premap(func(p person) int { return p.Age }, index.NewBTree[int]()))

	k := c.Insert(person{Name: "alice", Age: 30})
	c.AdjustByKey(k, func(p person) person {
		p.Age = 40
		return p
	})

	indexed.Query(c, func(ix *index.PremapIndex[person, int, *index.BTree[int]], _ indexed.Env[person]) struct{} {
		v, _, ok := ix.Inner().MaxOne()
		require.True(t, ok)
		assert.Equal(t, 40, v)
		assert.Equal(t, 1, ix.Inner().CountDistinct())
		return struct{}{}
	})
}

func TestPremapShallowCloneIsolation(t *testing.T) {
	c := indexed.New[person](index.Premap(func(p person) int { return p.Age }, index.NewHashTable[int]()))
	c.Insert(person{Name: "alice", Age: 30})

	clone := indexed.ShallowClone(c)
	clone.Insert(person{Name: "bob", Age: 25})

	n := indexed.Query(c, func(ix *index.PremapIndex[person, int, *index.HashTable[int]], _ indexed.Env[person]) int {
		return ix.Inner().CountDistinct()
	})
	assert.Equal(t, 1, n)
}
