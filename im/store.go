package im

import (
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/hupe1980/indexed"
)

// Store is a persistent record store. Clone is O(1), so collections
// backed by it shallow-clone without copying records.
type Store[In any] struct {
	m *immutable.Map[indexed.Key, In]
}

var _ indexed.Store[int] = (*Store[int])(nil)

// NewStore returns an empty persistent store, for use with
// indexed.WithStore.
func NewStore[In any]() indexed.Store[In] {
	return &Store[In]{m: immutable.NewMap[indexed.Key, In](keyHasher{})}
}

func (s *Store[In]) Get(k indexed.Key) (In, bool) { return s.m.Get(k) }

func (s *Store[In]) Set(k indexed.Key, v In) { s.m = s.m.Set(k, v) }

func (s *Store[In]) Delete(k indexed.Key) (In, bool) {
	v, ok := s.m.Get(k)
	if ok {
		s.m = s.m.Delete(k)
	}
	return v, ok
}

func (s *Store[In]) Len() int { return s.m.Len() }

func (s *Store[In]) All() iter.Seq2[indexed.Key, In] {
	return func(yield func(indexed.Key, In) bool) {
		it := s.m.Iterator()
		for !it.Done() {
			k, v, _ := it.Next()
			if !yield(k, v) {
				return
			}
		}
	}
}

func (s *Store[In]) Clone() indexed.Store[In] { return &Store[In]{m: s.m} }
