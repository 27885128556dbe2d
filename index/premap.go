package index

import "github.com/hupe1980/indexed"

// PremapIndex rewrites every operation's payload through a projection
// before forwarding it to the inner index, so an index over a field (or
// any derived value) can be attached to a collection of whole records.
// It holds no state beyond the inner index; the projected value lives
// only for the duration of the call.
type PremapIndex[In, Out any, Ix indexed.Index[Out]] struct {
	f     func(In) Out
	inner Ix
}

// Premap wraps inner behind the projection f.
func Premap[In, Out any, Ix indexed.Index[Out]](f func(In) Out, inner Ix) *PremapIndex[In, Out, Ix] {
	return &PremapIndex[In, Out, Ix]{f: f, inner: inner}
}

func (ix *PremapIndex[In, Out, Ix]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	out := ix.f(*op.New)
	ix.inner.Insert(s, indexed.Insert[Out]{Key: op.Key, New: &out})
}

func (ix *PremapIndex[In, Out, Ix]) Update(s indexed.Seal, op indexed.Update[In]) {
	newOut := ix.f(*op.New)
	existingOut := ix.f(*op.Existing)
	ix.inner.Update(s, indexed.Update[Out]{Key: op.Key, New: &newOut, Existing: &existingOut})
}

func (ix *PremapIndex[In, Out, Ix]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	existingOut := ix.f(*op.Existing)
	ix.inner.Remove(s, indexed.Remove[Out]{Key: op.Key, Existing: &existingOut})
}

// Inner exposes the wrapped index for querying.
func (ix *PremapIndex[In, Out, Ix]) Inner() Ix {
	return ix.inner
}

// ShallowClone clones the combinator. The inner index must itself
// support shallow cloning; this panics otherwise.
func (ix *PremapIndex[In, Out, Ix]) ShallowClone() *PremapIndex[In, Out, Ix] {
	return &PremapIndex[In, Out, Ix]{f: ix.f, inner: shallowCloneInner[Ix](ix.inner)}
}
