package im

import (
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/hupe1980/indexed"
)

type groupEntry[Ix any] struct {
	ix   Ix
	live int
}

// Grouped is the persistent counterpart of index.Grouped, partitioning
// records into per-group inner indexes. Unlike the other im indexes its
// ShallowClone is O(groups): each inner index is shallow-cloned so that
// clones never observe each other's mutations.
type Grouped[In any, G comparable, Ix interface {
	indexed.Index[In]
	indexed.ShallowCloner[Ix]
}] struct {
	groups  *immutable.Map[G, groupEntry[Ix]]
	groupOf func(In) G
	mkInner func() Ix
	empty   Ix
}

// NewGrouped returns an empty persistent grouped index. groupOf assigns
// each record to a group and mkInner builds the index for a new group.
func NewGrouped[In any, G comparable, Ix interface {
	indexed.Index[In]
	indexed.ShallowCloner[Ix]
}](groupOf func(In) G, mkInner func() Ix) *Grouped[In, G, Ix] {
	return &Grouped[In, G, Ix]{
		groups:  immutable.NewMap[G, groupEntry[Ix]](comparableHasher[G]{}),
		groupOf: groupOf,
		mkInner: mkInner,
		empty:   mkInner(),
	}
}

func (ix *Grouped[In, G, Ix]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	g := ix.groupOf(*op.New)
	entry, ok := ix.groups.Get(g)
	if !ok {
		entry = groupEntry[Ix]{ix: ix.mkInner()}
	}
	entry.ix.Insert(s, op)
	entry.live++
	ix.groups = ix.groups.Set(g, entry)
}

func (ix *Grouped[In, G, Ix]) Update(s indexed.Seal, op indexed.Update[In]) {
	oldG := ix.groupOf(*op.Existing)
	newG := ix.groupOf(*op.New)
	if oldG == newG {
		entry, ok := ix.groups.Get(oldG)
		if !ok {
			return
		}
		entry.ix.Update(s, op)
		ix.groups = ix.groups.Set(oldG, entry)
		return
	}
	ix.Remove(s, indexed.Remove[In]{Key: op.Key, Existing: op.Existing})
	ix.Insert(s, indexed.Insert[In]{Key: op.Key, New: op.New})
}

func (ix *Grouped[In, G, Ix]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	g := ix.groupOf(*op.Existing)
	entry, ok := ix.groups.Get(g)
	if !ok {
		return
	}
	entry.ix.Remove(s, op)
	entry.live--
	if entry.live <= 0 {
		ix.groups = ix.groups.Delete(g)
		return
	}
	ix.groups = ix.groups.Set(g, entry)
}

// Get returns the inner index for a group. Absent groups yield a shared
// empty inner index; query it, do not expect it to track the group.
func (ix *Grouped[In, G, Ix]) Get(g G) Ix {
	entry, ok := ix.groups.Get(g)
	if !ok {
		return ix.empty
	}
	return entry.ix
}

// Groups iterates over every non-empty group and its inner index.
func (ix *Grouped[In, G, Ix]) Groups() iter.Seq2[G, Ix] {
	return func(yield func(G, Ix) bool) {
		it := ix.groups.Iterator()
		for !it.Done() {
			g, entry, _ := it.Next()
			if !yield(g, entry.ix) {
				return
			}
		}
	}
}

// Len returns the number of non-empty groups.
func (ix *Grouped[In, G, Ix]) Len() int { return ix.groups.Len() }

func (ix *Grouped[In, G, Ix]) ShallowClone() *Grouped[In, G, Ix] {
	groups := immutable.NewMap[G, groupEntry[Ix]](comparableHasher[G]{})
	it := ix.groups.Iterator()
	for !it.Done() {
		g, entry, _ := it.Next()
		groups = groups.Set(g, groupEntry[Ix]{ix: entry.ix.ShallowClone(), live: entry.live})
	}
	return &Grouped[In, G, Ix]{
		groups:  groups,
		groupOf: ix.groupOf,
		mkInner: ix.mkInner,
		empty:   ix.empty,
	}
}
