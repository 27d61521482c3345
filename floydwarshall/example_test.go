package floydwarshall_test

import (
	"fmt"

	"github.com/katalvlaran/adjax/floydwarshall"
	"github.com/katalvlaran/adjax/weighted"
)

// ExampleDistances prints one row of the all-pairs table.
func ExampleDistances() {
	g := weighted.New()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	dist, _ := floydwarshall.Distances(g)
	fmt.Println(dist["A"]["A"], dist["A"]["B"], dist["A"]["C"])
	// Output:
	// 0 1 3
}
