package im

import (
	"cmp"

	"github.com/benbjohnson/immutable"

	"github.com/hupe1980/indexed"
	"github.com/hupe1980/indexed/internal/strkey"
)

type funcComparer[T any] struct {
	compare func(a, b T) int
}

func (c funcComparer[T]) Compare(a, b T) int { return c.compare(a, b) }

// BTree is the persistent counterpart of index.BTree, an ordered index
// over values projected from records. ShallowClone is O(1).
type BTree[T any] struct {
	entries *immutable.SortedMap[T, *immutable.SortedMap[indexed.Key, struct{}]]
	compare func(a, b T) int
}

var _ indexed.Index[int] = (*BTree[int])(nil)

// NewBTree returns an empty persistent ordered index over an ordered
// value type.
func NewBTree[T cmp.Ordered]() *BTree[T] {
	return NewBTreeFunc(cmp.Compare[T])
}

// NewBTreeFunc returns an empty persistent ordered index using a custom
// comparison function.
func NewBTreeFunc[T any](compare func(a, b T) int) *BTree[T] {
	return &BTree[T]{
		entries: immutable.NewSortedMap[T, *immutable.SortedMap[indexed.Key, struct{}]](funcComparer[T]{compare: compare}),
		compare: compare,
	}
}

func (ix *BTree[T]) Insert(_ indexed.Seal, op indexed.Insert[T]) {
	keys, ok := ix.entries.Get(*op.New)
	if !ok {
		keys = emptyKeys()
	}
	ix.entries = ix.entries.Set(*op.New, keysInsert(keys, op.Key))
}

func (ix *BTree[T]) Update(s indexed.Seal, op indexed.Update[T]) {
	if ix.compare(*op.New, *op.Existing) == 0 {
		return
	}
	indexed.UpdateAsRemoveInsert(ix, s, op)
}

func (ix *BTree[T]) Remove(_ indexed.Seal, op indexed.Remove[T]) {
	keys, ok := ix.entries.Get(*op.Existing)
	if !ok {
		return
	}
	keys = keysRemove(keys, op.Key)
	if keys.Len() == 0 {
		ix.entries = ix.entries.Delete(*op.Existing)
		return
	}
	ix.entries = ix.entries.Set(*op.Existing, keys)
}

// GetOne returns an arbitrary key holding the given value.
func (ix *BTree[T]) GetOne(v T) (indexed.Key, bool) {
	keys, ok := ix.entries.Get(v)
	if !ok {
		return indexed.Key{}, false
	}
	return keysFirst(keys)
}

// GetAll returns every key holding the given value.
func (ix *BTree[T]) GetAll(v T) indexed.Distinct {
	keys, ok := ix.entries.Get(v)
	if !ok {
		return indexed.UnsafeDistinct(nil)
	}
	return indexed.UnsafeDistinct(keysSlice(keys))
}

// Range returns the keys of all records whose value lies in the
// half-open interval [from, to).
func (ix *BTree[T]) Range(from, to T) indexed.Distinct {
	var out []indexed.Key
	it := ix.entries.Iterator()
	it.Seek(from)
	for !it.Done() {
		v, keys, _ := it.Next()
		if ix.compare(v, to) >= 0 {
			break
		}
		out = append(out, keysSlice(keys)...)
	}
	return indexed.UnsafeDistinct(out)
}

// MinOne returns the smallest indexed value and one key holding it.
func (ix *BTree[T]) MinOne() (T, indexed.Key, bool) {
	it := ix.entries.Iterator()
	it.First()
	return ix.edge(it.Done(), it.Next)
}

// MaxOne returns the largest indexed value and one key holding it.
func (ix *BTree[T]) MaxOne() (T, indexed.Key, bool) {
	it := ix.entries.Iterator()
	it.Last()
	return ix.edge(it.Done(), it.Next)
}

func (ix *BTree[T]) edge(done bool, next func() (T, *immutable.SortedMap[indexed.Key, struct{}], bool)) (T, indexed.Key, bool) {
	var zero T
	if done {
		return zero, indexed.Key{}, false
	}
	v, keys, _ := next()
	k, ok := keysFirst(keys)
	if !ok {
		return zero, indexed.Key{}, false
	}
	return v, k, true
}

// CountDistinct returns the number of distinct indexed values.
func (ix *BTree[T]) CountDistinct() int { return ix.entries.Len() }

func (ix *BTree[T]) ShallowClone() *BTree[T] {
	return &BTree[T]{entries: ix.entries, compare: ix.compare}
}

// StartsWith returns the keys of all records whose string value starts
// with the given prefix, scanning the half-open range from the prefix
// to its lexicographic successor.
//
// The index must use the natural string ordering (NewBTree); the range
// bound is meaningless under a custom NewBTreeFunc ordering.
func StartsWith(ix *BTree[string], prefix string) indexed.Distinct {
	var out []indexed.Key
	it := ix.entries.Iterator()
	it.Seek(prefix)
	end, bounded := strkey.PrefixSuccessor(prefix)
	for !it.Done() {
		v, keys, _ := it.Next()
		if bounded && v >= end {
			break
		}
		out = append(out, keysSlice(keys)...)
	}
	return indexed.UnsafeDistinct(out)
}
