package index

import (
	"iter"

	"github.com/hupe1980/indexed"
)

// GroupedIndex partitions records into independent inner indexes keyed
// by a group key derived from the record. Groups come into existence on
// the first insert into them and are removed entirely when their last
// record leaves, so memory is bounded by the number of currently
// non-empty groups.
//
// Group iteration order is unspecified; callers must not assume creation
// order.
type GroupedIndex[In any, G comparable, Ix indexed.Index[In]] struct {
	groupKey func(In) G
	mkIndex  func() Ix
	groups   map[G]*group[Ix]
	empty    Ix
}

type group[Ix any] struct {
	ix   Ix
	live int
}

// Grouped creates a group-by combinator. mkIndex builds the inner index
// for each fresh group.
func Grouped[In any, G comparable, Ix indexed.Index[In]](groupKey func(In) G, mkIndex func() Ix) *GroupedIndex[In, G, Ix] {
	return &GroupedIndex[In, G, Ix]{
		groupKey: groupKey,
		mkIndex:  mkIndex,
		groups:   make(map[G]*group[Ix]),
		empty:    mkIndex(),
	}
}

func (ix *GroupedIndex[In, G, Ix]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	grp := ix.ensure(ix.groupKey(*op.New))
	grp.ix.Insert(s, op)
	grp.live++
}

func (ix *GroupedIndex[In, G, Ix]) Update(s indexed.Seal, op indexed.Update[In]) {
	existingKey := ix.groupKey(*op.Existing)
	newKey := ix.groupKey(*op.New)

	if existingKey == newKey {
		// Live counts are unchanged; the record stays in its group.
		ix.ensure(newKey).ix.Update(s, op)
		return
	}

	ix.Remove(s, indexed.Remove[In]{Key: op.Key, Existing: op.Existing})
	ix.Insert(s, indexed.Insert[In]{Key: op.Key, New: op.New})
}

func (ix *GroupedIndex[In, G, Ix]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	key := ix.groupKey(*op.Existing)
	grp, ok := ix.groups[key]
	if !ok {
		return
	}
	grp.ix.Remove(s, op)
	grp.live--
	if grp.live <= 0 {
		delete(ix.groups, key)
	}
}

// Get returns the inner index of the given group for querying. Absent
// groups yield a shared empty inner index, so queries against unknown
// group keys answer like an empty collection.
func (ix *GroupedIndex[In, G, Ix]) Get(key G) Ix {
	if grp, ok := ix.groups[key]; ok {
		return grp.ix
	}
	return ix.empty
}

// Groups iterates over all non-empty groups and their inner indexes.
func (ix *GroupedIndex[In, G, Ix]) Groups() iter.Seq2[G, Ix] {
	return func(yield func(G, Ix) bool) {
		for key, grp := range ix.groups {
			if !yield(key, grp.ix) {
				return
			}
		}
	}
}

// Len returns the number of non-empty groups.
func (ix *GroupedIndex[In, G, Ix]) Len() int {
	return len(ix.groups)
}

// ShallowClone copies the combinator, cloning every inner index. The
// inner index must itself support ShallowClone.
func (ix *GroupedIndex[In, G, Ix]) ShallowClone() *GroupedIndex[In, G, Ix] {
	groups := make(map[G]*group[Ix], len(ix.groups))
	for key, grp := range ix.groups {
		groups[key] = &group[Ix]{ix: shallowCloneInner(grp.ix), live: grp.live}
	}
	return &GroupedIndex[In, G, Ix]{
		groupKey: ix.groupKey,
		mkIndex:  ix.mkIndex,
		groups:   groups,
		empty:    ix.empty,
	}
}

func (ix *GroupedIndex[In, G, Ix]) ensure(key G) *group[Ix] {
	grp, ok := ix.groups[key]
	if !ok {
		grp = &group[Ix]{ix: ix.mkIndex()}
		ix.groups[key] = grp
	}
	return grp
}
