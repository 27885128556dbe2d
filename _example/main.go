package main

import (
	"fmt"

	"github.com/hupe1980/indexed"
	"github.com/hupe1980/indexed/aggregation"
	"github.com/hupe1980/indexed/im"
	"github.com/hupe1980/indexed/index"
)

type Player struct {
	Name  string
	Score int
}

type playerIndex = index.Zip3Index[Player,
	*index.PremapIndex[Player, string, *index.HashTable[string]],
	*index.PremapIndex[Player, int, *index.BTree[int]],
	*index.PremapIndex[Player, int, *aggregation.Mean[int]],
]

func newPlayerIndex() *playerIndex {
	return index.Zip3[Player](
		index.Premap(func(p Player) string { return p.Name }, index.NewHashTable[string]()),
		index.Premap(func(p Player) int { return p.Score }, index.NewBTree[int]()),
		index.Premap(func(p Player) int { return p.Score }, aggregation.NewMean[int]()),
	)
}

func main() {
	players := indexed.New[Player](newPlayerIndex())

	players.InsertAll(
		Player{Name: "alice", Score: 320},
		Player{Name: "bob", Score: 150},
		Player{Name: "carol", Score: 480},
	)

	fmt.Println("--- Lookup ---")

	bob, ok := indexed.QueryOne(players, func(ix *playerIndex) (indexed.Key, bool) {
		return ix.One().Inner().GetOne("bob")
	})
	fmt.Println("bob found:", ok, "score:", bob.Score)

	best, _ := indexed.QueryOne(players, func(ix *playerIndex) (indexed.Key, bool) {
		_, k, ok := ix.Two().Inner().MaxOne()
		return k, ok
	})
	fmt.Println("best player:", best.Name)

	mean := indexed.Query(players, func(ix *playerIndex, _ indexed.Env[Player]) float64 {
		return ix.Three().Inner().Value()
	})
	fmt.Printf("mean score: %.1f\n\n", mean)

	fmt.Println("--- Bulk update ---")

	n := players.UpdateWhere(
		func(ix *playerIndex) indexed.Distinct {
			return ix.Two().Inner().Range(0, 200)
		},
		func(p Player) Player {
			p.Score += 50
			return p
		},
	)
	fmt.Println("boosted players below 200:", n)

	fmt.Println()
	fmt.Println("--- Snapshots ---")

	scores := indexed.New[int](
		im.NewBTree[int](),
		indexed.WithStore[int](im.NewStore[int]()),
	)
	scores.InsertAll(10, 20, 30)

	snapshot := indexed.ShallowClone(scores)
	scores.Insert(40)

	fmt.Println("live count:", scores.Len())
	fmt.Println("snapshot count:", snapshot.Len())
}
