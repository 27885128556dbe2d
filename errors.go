package indexed

import "fmt"

// InvariantError indicates index/store desynchronization: an index
// reported a Key that the record store does not hold.
//
// The mutation ordering rules make this structurally impossible as long
// as all mutations go through the Collection API, so it is raised as a
// panic value rather than returned. Encountering it means a custom index
// retained stale keys or an index was mutated out-of-band.
type InvariantError struct {
	Key Key
	Op  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("indexed: invariant violation in %s: key %d not found in store", e.Op, e.Key.Uint64())
}
