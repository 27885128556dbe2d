package index

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/hupe1980/indexed"
	"github.com/hupe1980/indexed/internal/strkey"
)

// BTree is an ordered index: it maintains a b-tree from indexed value to
// the set of keys holding that value, supporting range scans and min/max
// lookups in O(log n).
type BTree[T any] struct {
	tr    *btree.BTreeG[btreeEntry[T]]
	less  func(a, b T) bool
	mkSet indexed.KeySetFactory
}

type btreeEntry[T any] struct {
	value T
	keys  indexed.KeySet
}

// NewBTree creates an empty ordered index over a naturally ordered type.
func NewBTree[T cmp.Ordered](opts ...Option) *BTree[T] {
	return NewBTreeFunc[T](cmp.Less[T], opts...)
}

// NewBTreeFunc creates an empty ordered index with a custom ordering.
func NewBTreeFunc[T any](less func(a, b T) bool, opts ...Option) *BTree[T] {
	c := newConfig(opts)
	return &BTree[T]{
		tr: btree.NewBTreeG(func(a, b btreeEntry[T]) bool {
			return less(a.value, b.value)
		}),
		less:  less,
		mkSet: c.mkSet,
	}
}

func (ix *BTree[T]) Insert(s indexed.Seal, op indexed.Insert[T]) {
	probe := btreeEntry[T]{value: *op.New}
	entry, ok := ix.tr.Get(probe)
	if !ok {
		entry = btreeEntry[T]{value: *op.New, keys: ix.mkSet()}
		ix.tr.Set(entry)
	}
	entry.keys.Insert(op.Key)
}

func (ix *BTree[T]) Update(s indexed.Seal, op indexed.Update[T]) {
	indexed.UpdateAsRemoveInsert[T](ix, s, op)
}

func (ix *BTree[T]) Remove(s indexed.Seal, op indexed.Remove[T]) {
	probe := btreeEntry[T]{value: *op.Existing}
	entry, ok := ix.tr.Get(probe)
	if !ok {
		return
	}
	entry.keys.Remove(op.Key)
	if entry.keys.IsEmpty() {
		ix.tr.Delete(probe)
	}
}

// GetOne returns the key of one record holding value.
func (ix *BTree[T]) GetOne(value T) (indexed.Key, bool) {
	entry, ok := ix.tr.Get(btreeEntry[T]{value: value})
	if !ok {
		return indexed.Key{}, false
	}
	return firstKey(entry.keys)
}

// GetAll returns the keys of all records holding value.
func (ix *BTree[T]) GetAll(value T) indexed.Distinct {
	entry, ok := ix.tr.Get(btreeEntry[T]{value: value})
	if !ok {
		return indexed.Distinct{}
	}
	return entry.keys.Distinct()
}

// Range returns the keys of all records whose value falls in [from, to).
// The result is distinct: values partition the key sets.
func (ix *BTree[T]) Range(from, to T) indexed.Distinct {
	var keys []indexed.Key
	ix.tr.Ascend(btreeEntry[T]{value: from}, func(entry btreeEntry[T]) bool {
		if !ix.less(entry.value, to) {
			return false
		}
		for k := range entry.keys.All() {
			keys = append(keys, k)
		}
		return true
	})
	return indexed.UnsafeDistinct(keys)
}

// MinOne returns the smallest live value and the key of one record
// holding it.
func (ix *BTree[T]) MinOne() (T, indexed.Key, bool) {
	var zero T
	entry, ok := ix.tr.Min()
	if !ok {
		return zero, indexed.Key{}, false
	}
	k, ok := firstKey(entry.keys)
	if !ok {
		return zero, indexed.Key{}, false
	}
	return entry.value, k, true
}

// MaxOne returns the largest live value and the key of one record
// holding it.
func (ix *BTree[T]) MaxOne() (T, indexed.Key, bool) {
	var zero T
	entry, ok := ix.tr.Max()
	if !ok {
		return zero, indexed.Key{}, false
	}
	k, ok := firstKey(entry.keys)
	if !ok {
		return zero, indexed.Key{}, false
	}
	return entry.value, k, true
}

// CountDistinct returns the number of distinct indexed values among live
// records.
func (ix *BTree[T]) CountDistinct() int {
	return ix.tr.Len()
}

// ShallowClone copies the index. Cost is proportional to the number of
// indexed values unless the key sets themselves clone cheaply.
func (ix *BTree[T]) ShallowClone() *BTree[T] {
	less := ix.less
	tr := btree.NewBTreeG(func(a, b btreeEntry[T]) bool {
		return less(a.value, b.value)
	})
	ix.tr.Scan(func(entry btreeEntry[T]) bool {
		tr.Set(btreeEntry[T]{value: entry.value, keys: entry.keys.Clone()})
		return true
	})
	return &BTree[T]{tr: tr, less: less, mkSet: ix.mkSet}
}

// StartsWith returns the keys of all records whose string value begins
// with prefix, scanning the half-open range from the prefix to its
// lexicographic successor. An empty prefix matches everything.
//
// The index must use the natural string ordering (NewBTree); the range
// bound is meaningless under a custom NewBTreeFunc ordering.
func StartsWith(ix *BTree[string], prefix string) indexed.Distinct {
	end, bounded := strkey.PrefixSuccessor(prefix)

	var keys []indexed.Key
	ix.tr.Ascend(btreeEntry[string]{value: prefix}, func(entry btreeEntry[string]) bool {
		if bounded && entry.value >= end {
			return false
		}
		for k := range entry.keys.All() {
			keys = append(keys, k)
		}
		return true
	})
	return indexed.UnsafeDistinct(keys)
}

func firstKey(set indexed.KeySet) (indexed.Key, bool) {
	for k := range set.All() {
		return k, true
	}
	return indexed.Key{}, false
}
