package im

import (
	"github.com/benbjohnson/immutable"

	"github.com/hupe1980/indexed"
)

// Keys is the persistent counterpart of index.Keys, tracking the set of
// live keys and ignoring record values. ShallowClone is O(1).
type Keys[In any] struct {
	keys *immutable.SortedMap[indexed.Key, struct{}]
}

var _ indexed.Index[int] = (*Keys[int])(nil)

// NewKeys returns an empty persistent key index.
func NewKeys[In any]() *Keys[In] {
	return &Keys[In]{keys: emptyKeys()}
}

func (ix *Keys[In]) Insert(_ indexed.Seal, op indexed.Insert[In]) {
	ix.keys = keysInsert(ix.keys, op.Key)
}

func (ix *Keys[In]) Update(_ indexed.Seal, _ indexed.Update[In]) {}

func (ix *Keys[In]) Remove(_ indexed.Seal, op indexed.Remove[In]) {
	ix.keys = keysRemove(ix.keys, op.Key)
}

// All returns the keys of all live records, in insertion order.
func (ix *Keys[In]) All() indexed.Distinct {
	return indexed.UnsafeDistinct(keysSlice(ix.keys))
}

// Contains reports whether the given key is live.
func (ix *Keys[In]) Contains(k indexed.Key) bool {
	_, ok := ix.keys.Get(k)
	return ok
}

// Count returns the number of live keys.
func (ix *Keys[In]) Count() int { return ix.keys.Len() }

func (ix *Keys[In]) ShallowClone() *Keys[In] {
	return &Keys[In]{keys: ix.keys}
}
