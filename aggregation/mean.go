package aggregation

import "github.com/hupe1980/indexed"

// Mean maintains the arithmetic mean of the indexed values.
type Mean[T Number] struct {
	sum   float64
	count uint64
}

// NewMean creates a mean aggregate.
func NewMean[T Number]() *Mean[T] {
	return &Mean[T]{}
}

func (a *Mean[T]) Insert(s indexed.Seal, op indexed.Insert[T]) {
	a.sum += float64(*op.New)
	a.count++
}

func (a *Mean[T]) Update(s indexed.Seal, op indexed.Update[T]) {
	a.sum += float64(*op.New) - float64(*op.Existing)
}

func (a *Mean[T]) Remove(s indexed.Seal, op indexed.Remove[T]) {
	a.sum -= float64(*op.Existing)
	a.count--
}

// Value returns the mean, or 0 when no records are live.
func (a *Mean[T]) Value() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// ShallowClone copies the aggregate; its state is O(1).
func (a *Mean[T]) ShallowClone() *Mean[T] {
	clone := *a
	return &clone
}
