package aggregation

import "github.com/hupe1980/indexed"

// Sum maintains the running total of the indexed values.
type Sum[T Number] struct {
	sum T
}

// NewSum creates a sum aggregate.
func NewSum[T Number]() *Sum[T] {
	return &Sum[T]{}
}

func (a *Sum[T]) Insert(s indexed.Seal, op indexed.Insert[T]) {
	a.sum += *op.New
}

func (a *Sum[T]) Update(s indexed.Seal, op indexed.Update[T]) {
	a.sum += *op.New - *op.Existing
}

func (a *Sum[T]) Remove(s indexed.Seal, op indexed.Remove[T]) {
	a.sum -= *op.Existing
}

// Value returns the running total.
func (a *Sum[T]) Value() T {
	return a.sum
}

// ShallowClone copies the aggregate; its state is O(1).
func (a *Sum[T]) ShallowClone() *Sum[T] {
	clone := *a
	return &clone
}
