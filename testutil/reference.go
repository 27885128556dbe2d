package testutil

import (
	"testing"

	"github.com/hupe1980/indexed"
)

// CheckAgainstReference drives a collection through rounds random
// mutations while maintaining a plain map as the reference model, and
// calls check after every mutation. check should compare what the
// collection's index answers against what the model implies.
//
// Mutations are weighted toward insertion so the collection grows, with
// updates, in-place adjustments and deletions mixed in on random live
// keys. The run is fully determined by seed.
func CheckAgainstReference[In any, Ix indexed.Index[In]](
	t *testing.T,
	seed int64,
	rounds int,
	c *indexed.Collection[In, Ix],
	mkValue func(r *RNG) In,
	check func(t *testing.T, model map[indexed.Key]In),
) {
	t.Helper()

	rng := NewRNG(seed)
	model := make(map[indexed.Key]In)

	liveKey := func() (indexed.Key, bool) {
		if len(model) == 0 {
			return indexed.Key{}, false
		}
		n := rng.Intn(len(model))
		for k := range model {
			if n == 0 {
				return k, true
			}
			n--
		}
		panic("unreachable")
	}

	for i := 0; i < rounds; i++ {
		switch p := rng.Float64(); {
		case p < 0.45:
			v := mkValue(rng)
			k := c.Insert(v)
			if _, dup := model[k]; dup {
				t.Fatalf("round %d: key %v handed out twice", i, k)
			}
			model[k] = v

		case p < 0.65:
			k, ok := liveKey()
			if !ok {
				continue
			}
			v := mkValue(rng)
			c.UpdateByKey(k, func(*In) In { return v })
			model[k] = v

		case p < 0.80:
			k, ok := liveKey()
			if !ok {
				continue
			}
			v := mkValue(rng)
			c.AdjustByKey(k, func(In) In { return v })
			model[k] = v

		default:
			k, ok := liveKey()
			if !ok {
				continue
			}
			c.DeleteByKey(k)
			delete(model, k)
		}

		if c.Len() != len(model) {
			t.Fatalf("round %d: collection has %d records, model has %d", i, c.Len(), len(model))
		}

		check(t, model)
		if t.Failed() {
			t.Fatalf("round %d: check failed (seed %d)", i, seed)
		}
	}
}
