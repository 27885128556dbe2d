package index

import "github.com/hupe1980/indexed"

// Zip2Index fans every operation out to two member indexes, in
// declaration order, and exposes each member for querying independently.
// This is the mechanism for attaching several unrelated indexes to one
// collection; nest Zips (or define a struct of indexes that forwards
// operations field by field) for more members.
type Zip2Index[In any, A indexed.Index[In], B indexed.Index[In]] struct {
	one A
	two B
}

// Zip2 composes two indexes over the same record type.
func Zip2[In any, A indexed.Index[In], B indexed.Index[In]](one A, two B) *Zip2Index[In, A, B] {
	return &Zip2Index[In, A, B]{one: one, two: two}
}

func (ix *Zip2Index[In, A, B]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	ix.one.Insert(s, op)
	ix.two.Insert(s, op)
}

func (ix *Zip2Index[In, A, B]) Update(s indexed.Seal, op indexed.Update[In]) {
	ix.one.Update(s, op)
	ix.two.Update(s, op)
}

func (ix *Zip2Index[In, A, B]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	ix.one.Remove(s, op)
	ix.two.Remove(s, op)
}

// One returns the first member.
func (ix *Zip2Index[In, A, B]) One() A { return ix.one }

// Two returns the second member.
func (ix *Zip2Index[In, A, B]) Two() B { return ix.two }

// ShallowClone clones the composition; every member must support
// shallow cloning.
func (ix *Zip2Index[In, A, B]) ShallowClone() *Zip2Index[In, A, B] {
	return &Zip2Index[In, A, B]{
		one: shallowCloneInner[A](ix.one),
		two: shallowCloneInner[B](ix.two),
	}
}

// Zip3Index fans every operation out to three member indexes.
type Zip3Index[In any, A indexed.Index[In], B indexed.Index[In], C indexed.Index[In]] struct {
	one   A
	two   B
	three C
}

// Zip3 composes three indexes over the same record type.
func Zip3[In any, A indexed.Index[In], B indexed.Index[In], C indexed.Index[In]](one A, two B, three C) *Zip3Index[In, A, B, C] {
	return &Zip3Index[In, A, B, C]{one: one, two: two, three: three}
}

func (ix *Zip3Index[In, A, B, C]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	ix.one.Insert(s, op)
	ix.two.Insert(s, op)
	ix.three.Insert(s, op)
}

func (ix *Zip3Index[In, A, B, C]) Update(s indexed.Seal, op indexed.Update[In]) {
	ix.one.Update(s, op)
	ix.two.Update(s, op)
	ix.three.Update(s, op)
}

func (ix *Zip3Index[In, A, B, C]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	ix.one.Remove(s, op)
	ix.two.Remove(s, op)
	ix.three.Remove(s, op)
}

// One returns the first member.
func (ix *Zip3Index[In, A, B, C]) One() A { return ix.one }

// Two returns the second member.
func (ix *Zip3Index[In, A, B, C]) Two() B { return ix.two }

// Three returns the third member.
func (ix *Zip3Index[In, A, B, C]) Three() C { return ix.three }

// ShallowClone clones the composition; every member must support
// shallow cloning.
func (ix *Zip3Index[In, A, B, C]) ShallowClone() *Zip3Index[In, A, B, C] {
	return &Zip3Index[In, A, B, C]{
		one:   shallowCloneInner[A](ix.one),
		two:   shallowCloneInner[B](ix.two),
		three: shallowCloneInner[C](ix.three),
	}
}

// Zip4Index fans every operation out to four member indexes.
type Zip4Index[In any, A indexed.Index[In], B indexed.Index[In], C indexed.Index[In], D indexed.Index[In]] struct {
	one   A
	two   B
	three C
	four  D
}

// Zip4 composes four indexes over the same record type.
func Zip4[In any, A indexed.Index[In], B indexed.Index[In], C indexed.Index[In], D indexed.Index[In]](one A, two B, three C, four D) *Zip4Index[In, A, B, C, D] {
	return &Zip4Index[In, A, B, C, D]{one: one, two: two, three: three, four: four}
}

func (ix *Zip4Index[In, A, B, C, D]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	ix.one.Insert(s, op)
	ix.two.Insert(s, op)
	ix.three.Insert(s, op)
	ix.four.Insert(s, op)
}

func (ix *Zip4Index[In, A, B, C, D]) Update(s indexed.Seal, op indexed.Update[In]) {
	ix.one.Update(s, op)
	ix.two.Update(s, op)
	ix.three.Update(s, op)
	ix.four.Update(s, op)
}

func (ix *Zip4Index[In, A, B, C, D]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	ix.one.Remove(s, op)
	ix.two.Remove(s, op)
	ix.three.Remove(s, op)
	ix.four.Remove(s, op)
}

// One returns the first member.
func (ix *Zip4Index[In, A, B, C, D]) One() A { return ix.one }

// Two returns the second member.
func (ix *Zip4Index[In, A, B, C, D]) Two() B { return ix.two }

// Three returns the third member.
func (ix *Zip4Index[In, A, B, C, D]) Three() C { return ix.three }

// Four returns the fourth member.
func (ix *Zip4Index[In, A, B, C, D]) Four() D { return ix.four }

// ShallowClone clones the composition; every member must support
// shallow cloning.
func (ix *Zip4Index[In, A, B, C, D]) ShallowClone() *Zip4Index[In, A, B, C, D] {
	return &Zip4Index[In, A, B, C, D]{
		one:   shallowCloneInner[A](ix.one),
		two:   shallowCloneInner[B](ix.two),
		three: shallowCloneInner[C](ix.three),
		four:  shallowCloneInner[D](ix.four),
	}
}

// Slice fans every operation out to a homogeneous list of indexes.
// Callers keep their own typed references to the members for querying.
type Slice[In any] []indexed.Index[In]

func (ix Slice[In]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	for _, inner := range ix {
		inner.Insert(s, op)
	}
}

func (ix Slice[In]) Update(s indexed.Seal, op indexed.Update[In]) {
	for _, inner := range ix {
		inner.Update(s, op)
	}
}

func (ix Slice[In]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	for _, inner := range ix {
		inner.Remove(s, op)
	}
}
