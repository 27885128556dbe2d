package indexed

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// KeySet is a set of Keys associated with one indexed value. Most leaf
// indexes map indexed values to KeySets, because several records may
// share the same value.
//
// The backing is pluggable: the default is a Go map, NewBitmapKeySet
// uses a 64-bit roaring bitmap (compact for dense key populations), and
// the im package provides a structurally-shared persistent backing.
type KeySet interface {
	Insert(key Key)
	Remove(key Key)
	Contains(key Key) bool
	Len() int
	IsEmpty() bool
	All() iter.Seq[Key]
	// Distinct snapshots the members. A set contains each key at most
	// once, so the result is safe for bulk delete/update.
	Distinct() Distinct
	// Clone returns an independent copy.
	Clone() KeySet
}

// KeySetFactory builds empty KeySets; leaf indexes take one as an option
// so callers choose the backing.
type KeySetFactory func() KeySet

type mapKeySet struct {
	keys map[Key]struct{}
}

// NewKeySet creates the default map-backed KeySet.
func NewKeySet() KeySet {
	return &mapKeySet{keys: make(map[Key]struct{})}
}

func (s *mapKeySet) Insert(key Key) { s.keys[key] = struct{}{} }

func (s *mapKeySet) Remove(key Key) { delete(s.keys, key) }

func (s *mapKeySet) Contains(key Key) bool { _, ok := s.keys[key]; return ok }

func (s *mapKeySet) Len() int { return len(s.keys) }

func (s *mapKeySet) IsEmpty() bool { return len(s.keys) == 0 }

func (s *mapKeySet) All() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for k := range s.keys {
			if !yield(k) {
				return
			}
		}
	}
}

func (s *mapKeySet) Distinct() Distinct {
	keys := make([]Key, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	return Distinct{keys: keys}
}

func (s *mapKeySet) Clone() KeySet {
	keys := make(map[Key]struct{}, len(s.keys))
	for k := range s.keys {
		keys[k] = struct{}{}
	}
	return &mapKeySet{keys: keys}
}

// BitmapKeySet is a KeySet backed by a 64-bit roaring bitmap.
type BitmapKeySet struct {
	rb *roaring64.Bitmap
}

// NewBitmapKeySet creates an empty roaring-backed KeySet.
func NewBitmapKeySet() KeySet {
	return &BitmapKeySet{rb: roaring64.New()}
}

func (s *BitmapKeySet) Insert(key Key) { s.rb.Add(key.Uint64()) }

func (s *BitmapKeySet) Remove(key Key) { s.rb.Remove(key.Uint64()) }

func (s *BitmapKeySet) Contains(key Key) bool { return s.rb.Contains(key.Uint64()) }

func (s *BitmapKeySet) Len() int { return int(s.rb.GetCardinality()) }

func (s *BitmapKeySet) IsEmpty() bool { return s.rb.IsEmpty() }

func (s *BitmapKeySet) All() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(KeyFromUint64(it.Next())) {
				return
			}
		}
	}
}

func (s *BitmapKeySet) Distinct() Distinct {
	keys := make([]Key, 0, s.rb.GetCardinality())
	it := s.rb.Iterator()
	for it.HasNext() {
		keys = append(keys, KeyFromUint64(it.Next()))
	}
	return Distinct{keys: keys}
}

func (s *BitmapKeySet) Clone() KeySet {
	return &BitmapKeySet{rb: s.rb.Clone()}
}
