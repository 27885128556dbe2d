package indexed

import "iter"

// Store is the canonical record storage of a Collection: a mapping from
// Key to record value. The Collection exclusively owns its Store;
// indexes only ever hold Keys.
type Store[In any] interface {
	Get(key Key) (In, bool)
	Set(key Key, value In)
	Delete(key Key) (In, bool)
	Len() int
	All() iter.Seq2[Key, In]
	// Clone returns an independent copy. The default map-backed store
	// copies all entries; the persistent store in the im package clones
	// in O(1) via structural sharing.
	Clone() Store[In]
}

type mapStore[In any] struct {
	data map[Key]In
}

// NewMapStore creates the default map-backed store.
func NewMapStore[In any]() Store[In] {
	return &mapStore[In]{data: make(map[Key]In)}
}

func (s *mapStore[In]) Get(key Key) (In, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *mapStore[In]) Set(key Key, value In) {
	s.data[key] = value
}

func (s *mapStore[In]) Delete(key Key) (In, bool) {
	v, ok := s.data[key]
	if ok {
		delete(s.data, key)
	}
	return v, ok
}

func (s *mapStore[In]) Len() int { return len(s.data) }

func (s *mapStore[In]) All() iter.Seq2[Key, In] {
	return func(yield func(Key, In) bool) {
		for k, v := range s.data {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (s *mapStore[In]) Clone() Store[In] {
	data := make(map[Key]In, len(s.data))
	for k, v := range s.data {
		data[k] = v
	}
	return &mapStore[In]{data: data}
}
