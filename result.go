package indexed

import "iter"

// Distinct is a sequence of Keys guaranteed to contain each key at most
// once. Index queries that draw from a single KeySet, or from key sets
// partitioned by indexed value, produce Distinct results.
//
// Bulk mutation through the query layer (DeleteWhere, UpdateWhere,
// TakeWhere) accepts only Distinct, so no record can be processed twice
// even under deep index composition. Results that may repeat a key, such
// as a pair of independent lookups, must be deduplicated by the caller
// and asserted with UnsafeDistinct.
type Distinct struct {
	keys []Key
}

// UnsafeDistinct asserts that keys contains no duplicates. The caller is
// responsible for the claim; a duplicate key makes bulk mutation process
// one record twice.
func UnsafeDistinct(keys []Key) Distinct {
	return Distinct{keys: keys}
}

// Keys returns the underlying keys. The slice must not be mutated.
func (d Distinct) Keys() []Key { return d.keys }

// Len returns the number of keys.
func (d Distinct) Len() int { return len(d.keys) }

// All iterates over the keys.
func (d Distinct) All() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for _, k := range d.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Env resolves Keys to stored records during a query. It is handed to
// query closures alongside the index, so an index answers in Keys and
// never touches the record store itself. Resolution works the same at
// every composition depth: whatever shape of keys a composite index
// yields, the closure walks it and maps each key through Env.
type Env[In any] struct {
	store Store[In]
}

// Get returns the record stored under key.
func (e Env[In]) Get(key Key) (In, bool) {
	return e.store.Get(key)
}

// MustGet returns the record stored under key, panicking with an
// *InvariantError if it is absent. Keys obtained from the index of the
// same Collection during the same query are always resolvable.
func (e Env[In]) MustGet(key Key) In {
	v, ok := e.store.Get(key)
	if !ok {
		panic(&InvariantError{Key: key, Op: "query"})
	}
	return v
}

// ResolveAll maps every key in d to its stored record.
func (e Env[In]) ResolveAll(d Distinct) []In {
	out := make([]In, 0, d.Len())
	for _, k := range d.keys {
		out = append(out, e.MustGet(k))
	}
	return out
}
