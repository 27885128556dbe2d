package index

import "github.com/hupe1980/indexed"

// FilteredIndex forwards operations to the inner index only for records
// the projection accepts. The projection doubles as a mapper, like
// Premap, so f both selects and transforms.
type FilteredIndex[In, Out any, Ix indexed.Index[Out]] struct {
	f     func(In) (Out, bool)
	inner Ix
}

// Filtered wraps inner behind the selecting projection f.
func Filtered[In, Out any, Ix indexed.Index[Out]](f func(In) (Out, bool), inner Ix) *FilteredIndex[In, Out, Ix] {
	return &FilteredIndex[In, Out, Ix]{f: f, inner: inner}
}

func (ix *FilteredIndex[In, Out, Ix]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	if out, ok := ix.f(*op.New); ok {
		ix.inner.Insert(s, indexed.Insert[Out]{Key: op.Key, New: &out})
	}
}

// Update distinguishes the four ways a record can move relative to the
// filtered set: staying inside forwards an update, leaving forwards a
// remove, entering forwards an insert, staying outside is a no-op.
// Forwarding a plain update across the boundary would corrupt the inner
// index.
func (ix *FilteredIndex[In, Out, Ix]) Update(s indexed.Seal, op indexed.Update[In]) {
	newOut, newOK := ix.f(*op.New)
	existingOut, existingOK := ix.f(*op.Existing)

	switch {
	case existingOK && newOK:
		ix.inner.Update(s, indexed.Update[Out]{Key: op.Key, New: &newOut, Existing: &existingOut})
	case existingOK:
		ix.inner.Remove(s, indexed.Remove[Out]{Key: op.Key, Existing: &existingOut})
	case newOK:
		ix.inner.Insert(s, indexed.Insert[Out]{Key: op.Key, New: &newOut})
	}
}

func (ix *FilteredIndex[In, Out, Ix]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	if out, ok := ix.f(*op.Existing); ok {
		ix.inner.Remove(s, indexed.Remove[Out]{Key: op.Key, Existing: &out})
	}
}

// Inner exposes the wrapped index for querying.
func (ix *FilteredIndex[In, Out, Ix]) Inner() Ix {
	return ix.inner
}

// ShallowClone clones the combinator. The inner index must itself
// support shallow cloning; this panics otherwise.
func (ix *FilteredIndex[In, Out, Ix]) ShallowClone() *FilteredIndex[In, Out, Ix] {
	return &FilteredIndex[In, Out, Ix]{f: ix.f, inner: shallowCloneInner[Ix](ix.inner)}
}
