package im

import (
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/hupe1980/indexed"
)

// KeySet is a persistent key set. Clone is O(1); the clone and the
// original share structure and diverge copy-on-write.
type KeySet struct {
	m *immutable.SortedMap[indexed.Key, struct{}]
}

var _ indexed.KeySet = (*KeySet)(nil)

// NewKeySet returns an empty persistent key set. Pass it to
// index.WithKeySet to back a mutable-family index with persistent sets.
func NewKeySet() indexed.KeySet {
	return &KeySet{m: emptyKeys()}
}

func (s *KeySet) Insert(k indexed.Key) { s.m = keysInsert(s.m, k) }

func (s *KeySet) Remove(k indexed.Key) { s.m = keysRemove(s.m, k) }

func (s *KeySet) Contains(k indexed.Key) bool {
	_, ok := s.m.Get(k)
	return ok
}

func (s *KeySet) Len() int { return s.m.Len() }

func (s *KeySet) IsEmpty() bool { return s.m.Len() == 0 }

func (s *KeySet) All() iter.Seq[indexed.Key] {
	return func(yield func(indexed.Key) bool) {
		it := s.m.Iterator()
		for !it.Done() {
			k, _, _ := it.Next()
			if !yield(k) {
				return
			}
		}
	}
}

func (s *KeySet) Distinct() indexed.Distinct {
	return indexed.UnsafeDistinct(keysSlice(s.m))
}

func (s *KeySet) Clone() indexed.KeySet { return &KeySet{m: s.m} }
