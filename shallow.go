package indexed

// ShallowCloner marks index types that can produce an independent copy
// of themselves: mutating the clone never affects the original. How
// cheap the copy is depends on the index. Persistent indexes (the im
// package) and O(1)-state aggregates clone in constant time; the
// mutable index family clones its key sets, at a cost proportional to
// the number of indexed values.
type ShallowCloner[T any] interface {
	ShallowClone() T
}

// ShallowClone snapshots a collection whose index and store both support
// cheap cloning. The clone shares underlying structure with the
// original, but mutating one never affects the other (copy-on-write).
//
// With the default map-backed store the store portion is still a full
// copy; use im.NewStore for O(1) snapshots.
func ShallowClone[In any, Ix interface {
	Index[In]
	ShallowCloner[Ix]
}](c *Collection[In, Ix]) *Collection[In, Ix] {
	return &Collection[In, Ix]{
		index:     c.index.ShallowClone(),
		store:     c.store.Clone(),
		nextKeyID: c.nextKeyID,
		logger:    c.logger,
	}
}
