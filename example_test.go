package indexed_test

import (
	"fmt"

	"github.com/hupe1980/indexed"
	"github.com/hupe1980/indexed/aggregation"
	"github.com/hupe1980/indexed/im"
	"github.com/hupe1980/indexed/index"
)

// Example_basic demonstrates a collection with a single equality index.
func Example_basic() {
	colors := indexed.New[string](index.NewHashTable[string]())

	colors.InsertAll("red", "blue", "red")

	n := indexed.Query(colors, func(ix *index.HashTable[string], _ indexed.Env[string]) int {
		return ix.GetAll("red").Len()
	})
	fmt.Println("records holding red:", n)
	// Output: records holding red: 2
}

// Example_composition demonstrates indexing two fields of a record type
// at once by composing premap with different leaf indexes.
func Example_composition() {
	type Employee struct {
		Name   string
		Salary int
	}

	type employeeIndex = index.Zip2Index[Employee,
		*index.PremapIndex[Employee, string, *index.HashTable[string]],
		*index.PremapIndex[Employee, int, *index.BTree[int]],
	]

	employees := indexed.New[Employee](index.Zip2[Employee](
		index.Premap(func(e Employee) string { return e.Name }, index.NewHashTable[string]()),
		index.Premap(func(e Employee) int { return e.Salary }, index.NewBTree[int]()),
	))

	employees.InsertAll(
		Employee{Name: "alice", Salary: 90000},
		Employee{Name: "bob", Salary: 70000},
	)

	top, ok := indexed.QueryOne(employees, func(ix *employeeIndex) (indexed.Key, bool) {
		_, key, ok := ix.Two().Inner().MaxOne()
		return key, ok
	})
	if ok {
		fmt.Println("top earner:", top.Name)
	}
	// Output: top earner: alice
}

// Example_aggregation demonstrates an incrementally maintained aggregate.
func Example_aggregation() {
	readings := indexed.New[float64](aggregation.NewMean[float64]())

	readings.InsertAll(21.5, 22.0, 22.5)

	mean := indexed.Query(readings, func(ix *aggregation.Mean[float64], _ indexed.Env[float64]) float64 {
		return ix.Value()
	})
	fmt.Printf("mean reading: %.1f\n", mean)
	// Output: mean reading: 22.0
}

// Example_snapshot demonstrates cheap snapshots with the persistent im
// variants.
func Example_snapshot() {
	events := indexed.New[string](
		im.NewKeys[string](),
		indexed.WithStore[string](im.NewStore[string]()),
	)
	events.InsertAll("started", "connected")

	snapshot := indexed.ShallowClone(events)
	events.Insert("disconnected")

	fmt.Println("live:", events.Len(), "snapshot:", snapshot.Len())
	// Output: live: 3 snapshot: 2
}
