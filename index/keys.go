package index

import "github.com/hupe1980/indexed"

// Keys maintains the set of keys of all currently live records and
// nothing else; the record values are never looked at. It is the natural
// innermost index for grouping when only group membership matters.
type Keys[In any] struct {
	keys indexed.KeySet
}

// NewKeys creates an empty membership index.
func NewKeys[In any](opts ...Option) *Keys[In] {
	c := newConfig(opts)
	return &Keys[In]{keys: c.mkSet()}
}

func (ix *Keys[In]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	ix.keys.Insert(op.Key)
}

func (ix *Keys[In]) Update(s indexed.Seal, op indexed.Update[In]) {
	// Membership is unaffected by value changes.
}

func (ix *Keys[In]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	ix.keys.Remove(op.Key)
}

// All returns the keys of all live records.
func (ix *Keys[In]) All() indexed.Distinct {
	return ix.keys.Distinct()
}

// Contains reports whether key belongs to a live record.
func (ix *Keys[In]) Contains(key indexed.Key) bool {
	return ix.keys.Contains(key)
}

// Count returns the number of live records.
func (ix *Keys[In]) Count() int {
	return ix.keys.Len()
}

// ShallowClone copies the index by cloning its key set.
func (ix *Keys[In]) ShallowClone() *Keys[In] {
	return &Keys[In]{keys: ix.keys.Clone()}
}
