package aggregation

import "github.com/hupe1980/indexed"

// Number covers the numeric types the built-in aggregates accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Aggregate is the generic incremental-aggregate index: a state, a pure
// projection of the state into the answer, and an update rule with its
// inverse. The built-in aggregates are thin wrappers over the same idea
// with hand-tuned update paths.
type Aggregate[In, State, Q any] struct {
	state  State
	query  func(State) Q
	insert func(*State, In)
	remove func(*State, In)
}

// New creates an aggregate index from an initial state, a query
// projection, and an insert rule with its inverse.
func New[In, State, Q any](
	initial State,
	query func(State) Q,
	insert func(*State, In),
	remove func(*State, In),
) *Aggregate[In, State, Q] {
	return &Aggregate[In, State, Q]{
		state:  initial,
		query:  query,
		insert: insert,
		remove: remove,
	}
}

func (a *Aggregate[In, State, Q]) Insert(s indexed.Seal, op indexed.Insert[In]) {
	a.insert(&a.state, *op.New)
}

func (a *Aggregate[In, State, Q]) Update(s indexed.Seal, op indexed.Update[In]) {
	a.remove(&a.state, *op.Existing)
	a.insert(&a.state, *op.New)
}

func (a *Aggregate[In, State, Q]) Remove(s indexed.Seal, op indexed.Remove[In]) {
	a.remove(&a.state, *op.Existing)
}

// Value returns the current aggregate.
func (a *Aggregate[In, State, Q]) Value() Q {
	return a.query(a.state)
}

// ShallowClone copies the aggregate. The state is copied by value, so a
// State holding pointers would remain shared between the copies.
func (a *Aggregate[In, State, Q]) ShallowClone() *Aggregate[In, State, Q] {
	clone := *a
	return &clone
}
