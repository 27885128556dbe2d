// Package im provides persistent variants of the leaf indexes, the
// grouped combinator, the key set and the record store, built on
// structurally shared immutable maps.
//
// Mutation semantics are identical to the mutable family in the index
// package; the payoff is cloning. A collection backed by im.NewStore and
// im indexes shallow-clones in O(1) (amortized), so snapshotting or
// branching a collection is cheap, and mutating one branch never affects
// another. The exception is Grouped, whose clone cost is proportional to
// the number of non-empty groups.
package im
