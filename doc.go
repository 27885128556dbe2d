// Package indexed provides in-memory collections with composable,
// automatically maintained secondary indexes.
//
// A Collection owns a set of records and one index; the index may be a
// single lookup structure or an arbitrarily deep composition of them.
// Every insert, update and delete flows through the store and the index
// in one call, so queries never observe a stale index.
//
// # Quick Start
//
//	type Person struct {
//		Name       string
//		Age        int
//		Occupation string
//	}
//
//	type personIndex = index.Zip2Index[Person,
//		*index.PremapIndex[Person, int, *index.BTree[int]],
//		*index.PremapIndex[Person, string, *index.HashTable[string]],
//	]
//
//	people := indexed.New[Person](index.Zip2[Person](
//		index.Premap(func(p Person) int { return p.Age }, index.NewBTree[int]()),
//		index.Premap(func(p Person) string { return p.Occupation }, index.NewHashTable[string]()),
//	))
//
//	alice := people.Insert(Person{Name: "Alice", Age: 30, Occupation: "Engineer"})
//	people.Insert(Person{Name: "Bob", Age: 25, Occupation: "Designer"})
//	people.AdjustByKeyMut(alice, func(p *Person) { p.Age = 31 })
//
//	// Oldest person, via the age index.
//	oldest, ok := indexed.QueryOne(people, func(ix *personIndex) (indexed.Key, bool) {
//		_, key, ok := ix.One().Inner().MaxOne()
//		return key, ok
//	})
//
// See the index package for the built-in leaf indexes (hash table,
// btree, key set, suffix tree) and combinators (premap, filtered,
// grouped, zip), the aggregation package for incremental aggregates
// (count, sum, mean, standard deviation), and the im package for
// persistent variants that make snapshotting a collection cheap.
//
// Collections are single-threaded: operations complete synchronously
// before returning and no internal locking is performed.
package indexed
