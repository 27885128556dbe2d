package aggregation

import "github.com/hupe1980/indexed"

// Count maintains the number of live records.
type Count[In any] struct {
	n int
}

// NewCount creates a count aggregate.
func NewCount[In any]() *Count[In] {
	return &Count[In]{}
}

func (a *Count[In]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	a.n++
}

func (a *Count[In]) Update(s indexed.Seal, op indexed.Update[In]) {
	// A value change does not change the count.
}

func (a *Count[In]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	a.n--
}

// Count returns the number of live records.
func (a *Count[In]) Count() int {
	return a.n
}

// ShallowClone copies the aggregate; its state is O(1).
func (a *Count[In]) ShallowClone() *Count[In] {
	clone := *a
	return &clone
}
