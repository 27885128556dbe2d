package index

import "github.com/hupe1980/indexed"

// Noop discards every operation. Useful as a placeholder member in a
// composition and as the inner index of a Grouped when only group
// existence matters.
type Noop[In any] struct{}

// NewNoop creates a no-op index.
func NewNoop[In any]() *Noop[In] { return &Noop[In]{} }

func (*Noop[In]) Insert(s indexed.Seal, op indexed.Insert[In]) {}
func (*Noop[In]) Update(s indexed.Seal, op indexed.Update[In]) {}
func (*Noop[In]) Remove(s indexed.Seal, op indexed.Remove[In]) {}

// ShallowClone clones the index; there is nothing to copy.
func (ix *Noop[In]) ShallowClone() *Noop[In] { return ix }
