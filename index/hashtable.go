package index

import "github.com/hupe1980/indexed"

// HashTable is an equality-lookup index: it maintains a map from indexed
// value to the set of keys holding that value. Operations are O(1) on
// average.
type HashTable[T comparable] struct {
	data  map[T]indexed.KeySet
	mkSet indexed.KeySetFactory
}

// NewHashTable creates an empty equality index.
func NewHashTable[T comparable](opts ...Option) *HashTable[T] {
	c := newConfig(opts)
	return &HashTable[T]{
		data:  make(map[T]indexed.KeySet),
		mkSet: c.mkSet,
	}
}

func (ix *HashTable[T]) Insert(s indexed.Seal, op indexed.Insert[T]) {
	v := *op.New
	set, ok := ix.data[v]
	if !ok {
		set = ix.mkSet()
		ix.data[v] = set
	}
	set.Insert(op.Key)
}

func (ix *HashTable[T]) Update(s indexed.Seal, op indexed.Update[T]) {
	if *op.New == *op.Existing {
		return
	}
	indexed.UpdateAsRemoveInsert[T](ix, s, op)
}

func (ix *HashTable[T]) Remove(s indexed.Seal, op indexed.Remove[T]) {
	v := *op.Existing
	set, ok := ix.data[v]
	if !ok {
		return
	}
	set.Remove(op.Key)
	if set.IsEmpty() {
		delete(ix.data, v)
	}
}

// GetOne returns the key of one record holding value. Which record is
// unspecified when several share the value.
func (ix *HashTable[T]) GetOne(value T) (indexed.Key, bool) {
	set, ok := ix.data[value]
	if !ok {
		return indexed.Key{}, false
	}
	for k := range set.All() {
		return k, true
	}
	return indexed.Key{}, false
}

// GetAll returns the keys of all records holding value.
func (ix *HashTable[T]) GetAll(value T) indexed.Distinct {
	set, ok := ix.data[value]
	if !ok {
		return indexed.Distinct{}
	}
	return set.Distinct()
}

// Contains reports whether any live record holds value.
func (ix *HashTable[T]) Contains(value T) bool {
	_, ok := ix.data[value]
	return ok
}

// CountDistinct returns the number of distinct indexed values among live
// records.
func (ix *HashTable[T]) CountDistinct() int {
	return len(ix.data)
}

// ShallowClone copies the index. Cost is proportional to the number of
// indexed values unless the key sets themselves clone cheaply.
func (ix *HashTable[T]) ShallowClone() *HashTable[T] {
	data := make(map[T]indexed.KeySet, len(ix.data))
	for v, set := range ix.data {
		data[v] = set.Clone()
	}
	return &HashTable[T]{data: data, mkSet: ix.mkSet}
}
