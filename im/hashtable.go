package im

import (
	"github.com/benbjohnson/immutable"

	"github.com/hupe1980/indexed"
)

// HashTable is the persistent counterpart of index.HashTable. Buckets
// live in an immutable hash map whose values are persistent key sets, so
// ShallowClone is O(1) and clones never share mutable state.
type HashTable[T comparable] struct {
	buckets *immutable.Map[T, *immutable.SortedMap[indexed.Key, struct{}]]
}

var _ indexed.Index[string] = (*HashTable[string])(nil)

// NewHashTable returns an empty persistent hash table index.
func NewHashTable[T comparable]() *HashTable[T] {
	return &HashTable[T]{
		buckets: immutable.NewMap[T, *immutable.SortedMap[indexed.Key, struct{}]](comparableHasher[T]{}),
	}
}

func (ix *HashTable[T]) Insert(_ indexed.Seal, op indexed.Insert[T]) {
	ix.add(*op.New, op.Key)
}

func (ix *HashTable[T]) Update(s indexed.Seal, op indexed.Update[T]) {
	if *op.New == *op.Existing {
		return
	}
	indexed.UpdateAsRemoveInsert(ix, s, op)
}

func (ix *HashTable[T]) Remove(_ indexed.Seal, op indexed.Remove[T]) {
	keys, ok := ix.buckets.Get(*op.Existing)
	if !ok {
		return
	}
	keys = keysRemove(keys, op.Key)
	if keys.Len() == 0 {
		ix.buckets = ix.buckets.Delete(*op.Existing)
		return
	}
	ix.buckets = ix.buckets.Set(*op.Existing, keys)
}

func (ix *HashTable[T]) add(v T, k indexed.Key) {
	keys, ok := ix.buckets.Get(v)
	if !ok {
		keys = emptyKeys()
	}
	ix.buckets = ix.buckets.Set(v, keysInsert(keys, k))
}

// GetOne returns an arbitrary key holding the given value.
func (ix *HashTable[T]) GetOne(v T) (indexed.Key, bool) {
	keys, ok := ix.buckets.Get(v)
	if !ok {
		return indexed.Key{}, false
	}
	return keysFirst(keys)
}

// GetAll returns every key holding the given value.
func (ix *HashTable[T]) GetAll(v T) indexed.Distinct {
	keys, ok := ix.buckets.Get(v)
	if !ok {
		return indexed.UnsafeDistinct(nil)
	}
	return indexed.UnsafeDistinct(keysSlice(keys))
}

// Contains reports whether any record holds the given value.
func (ix *HashTable[T]) Contains(v T) bool {
	_, ok := ix.buckets.Get(v)
	return ok
}

// CountDistinct returns the number of distinct indexed values.
func (ix *HashTable[T]) CountDistinct() int { return ix.buckets.Len() }

func (ix *HashTable[T]) ShallowClone() *HashTable[T] {
	return &HashTable[T]{buckets: ix.buckets}
}
