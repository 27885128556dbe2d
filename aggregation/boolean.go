package aggregation

import "github.com/hupe1980/indexed"

// Boolean maintains true/false tallies over boolean values, answering
// all/any queries in O(1).
type Boolean struct {
	trueCount  int
	falseCount int
}

// NewBoolean creates a boolean aggregate.
func NewBoolean() *Boolean {
	return &Boolean{}
}

func (a *Boolean) Insert(s indexed.Seal, op indexed.Insert[bool]) {
	if *op.New {
		a.trueCount++
	} else {
		a.falseCount++
	}
}

func (a *Boolean) Update(s indexed.Seal, op indexed.Update[bool]) {
	switch {
	case !*op.Existing && *op.New:
		a.falseCount--
		a.trueCount++
	case *op.Existing && !*op.New:
		a.trueCount--
		a.falseCount++
	}
}

func (a *Boolean) Remove(s indexed.Seal, op indexed.Remove[bool]) {
	if *op.Existing {
		a.trueCount--
	} else {
		a.falseCount--
	}
}

// All reports whether every live value is true. An empty collection is
// vacuously true.
func (a *Boolean) All() bool {
	return a.falseCount == 0
}

// Any reports whether at least one live value is true.
func (a *Boolean) Any() bool {
	return a.trueCount > 0
}

// TrueCount returns the number of true values.
func (a *Boolean) TrueCount() int { return a.trueCount }

// FalseCount returns the number of false values.
func (a *Boolean) FalseCount() int { return a.falseCount }

// TotalCount returns the number of live values.
func (a *Boolean) TotalCount() int { return a.trueCount + a.falseCount }

// ShallowClone copies the aggregate; its state is O(1).
func (a *Boolean) ShallowClone() *Boolean {
	clone := *a
	return &clone
}
