package im

import (
	"hash/maphash"

	"github.com/benbjohnson/immutable"

	"github.com/hupe1980/indexed"
)

var hashSeed = maphash.MakeSeed()

// comparableHasher hashes any comparable type via runtime hashing. It is
// the default hasher for persistent maps keyed by user values.
type comparableHasher[T comparable] struct{}

func (comparableHasher[T]) Hash(v T) uint32 {
	return uint32(maphash.Comparable(hashSeed, v))
}

func (comparableHasher[T]) Equal(a, b T) bool { return a == b }

// keyHasher hashes record keys directly off their numeric identity.
type keyHasher struct{}

func (keyHasher) Hash(k indexed.Key) uint32 { return uint32(k.Uint64() * 2654435761) }

func (keyHasher) Equal(a, b indexed.Key) bool { return a == b }

// keyComparer orders record keys by insertion order.
type keyComparer struct{}

func (keyComparer) Compare(a, b indexed.Key) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

func emptyKeys() *immutable.SortedMap[indexed.Key, struct{}] {
	return immutable.NewSortedMap[indexed.Key, struct{}](keyComparer{})
}

func keysInsert(m *immutable.SortedMap[indexed.Key, struct{}], k indexed.Key) *immutable.SortedMap[indexed.Key, struct{}] {
	return m.Set(k, struct{}{})
}

func keysRemove(m *immutable.SortedMap[indexed.Key, struct{}], k indexed.Key) *immutable.SortedMap[indexed.Key, struct{}] {
	return m.Delete(k)
}

func keysSlice(m *immutable.SortedMap[indexed.Key, struct{}]) []indexed.Key {
	out := make([]indexed.Key, 0, m.Len())
	it := m.Iterator()
	for !it.Done() {
		k, _, _ := it.Next()
		out = append(out, k)
	}
	return out
}

func keysFirst(m *immutable.SortedMap[indexed.Key, struct{}]) (indexed.Key, bool) {
	it := m.Iterator()
	if it.Done() {
		return indexed.Key{}, false
	}
	k, _, _ := it.Next()
	return k, true
}
