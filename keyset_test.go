package indexed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/indexed"
	"github.com/hupe1980/indexed/im"
)

func keySetImpls() map[string]indexed.KeySetFactory {
	return map[string]indexed.KeySetFactory{
		"map":    indexed.NewKeySet,
		"bitmap": indexed.NewBitmapKeySet,
		"im":     im.NewKeySet,
	}
}

func TestKeySetBasics(t *testing.T) {
	for name, mkSet := range keySetImpls() {
		t.Run(name, func(t *testing.T) {
			set := mkSet()
			k1 := indexed.KeyFromUint64(1)
			k2 := indexed.KeyFromUint64(2)

			assert.True(t, set.IsEmpty())

			set.Insert(k1)
			set.Insert(k2)
			set.Insert(k1) // duplicate

			assert.Equal(t, 2, set.Len())
			assert.True(t, set.Contains(k1))
			assert.True(t, set.Contains(k2))

			set.Remove(k1)
			assert.False(t, set.Contains(k1))
			assert.Equal(t, 1, set.Len())

			set.Remove(k1) // absent
			assert.Equal(t, 1, set.Len())
		})
	}
}

func TestKeySetDistinct(t *testing.T) {
	for name, mkSet := range keySetImpls() {
		t.Run(name, func(t *testing.T) {
			set := mkSet()
			for i := range uint64(10) {
				set.Insert(indexed.KeyFromUint64(i))
			}

			res := set.Distinct()
			assert.Equal(t, 10, res.Len())

			seen := make(map[indexed.Key]struct{})
			for _, k := range res.Keys() {
				_, dup := seen[k]
				require.False(t, dup)
				seen[k] = struct{}{}
			}
		})
	}
}

func TestKeySetCloneIsolation(t *testing.T) {
	for name, mkSet := range keySetImpls() {
		t.Run(name, func(t *testing.T) {
			set := mkSet()
			k1 := indexed.KeyFromUint64(1)
			k2 := indexed.KeyFromUint64(2)
			set.Insert(k1)

			clone := set.Clone()
			set.Insert(k2)
			clone.Remove(k1)

			assert.Equal(t, 2, set.Len())
			assert.True(t, set.Contains(k1))
			assert.Equal(t, 0, clone.Len())
		})
	}
}

func TestKeySetAllStops(t *testing.T) {
	set := indexed.NewKeySet()
	for i := range uint64(5) {
		set.Insert(indexed.KeyFromUint64(i))
	}

	n := 0
	for range set.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
