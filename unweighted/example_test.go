package unweighted_test

import (
	"fmt"

	"github.com/katalvlaran/adjax/unweighted"
)

// ExampleGraph_Neighbors shows how an undirected graph resolves neighbors at
// query time: only the forward edges are stored, yet both directions appear.
func ExampleGraph_Neighbors() {
	g := unweighted.New() // undirected by default
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("C", "A")

	nbrs, _ := g.Neighbors("A")
	fmt.Println(nbrs)
	// Output:
	// [C B]
}
