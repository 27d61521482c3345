package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjax/dijkstra"
	"github.com/katalvlaran/adjax/weighted"
)

// build constructs an undirected weighted graph from (u,v,w) triples.
func build(t *testing.T, edges [][3]interface{}) *weighted.Graph {
	t.Helper()
	g := weighted.New()
	for _, e := range edges {
		for _, id := range []string{e[0].(string), e[1].(string)} {
			if !g.HasVertex(id) {
				require.NoError(t, g.AddVertex(id))
			}
		}
		require.NoError(t, g.AddEdge(e[0].(string), e[1].(string), float64(e[2].(int))))
	}

	return g
}

// TestShortestDistance_PrefersCheaperDetour: the two-hop route wins over the
// heavier direct edge.
func TestShortestDistance_PrefersCheaperDetour(t *testing.T) {
	g := build(t, [][3]interface{}{
		{"A", "B", 1},
		{"B", "C", 2},
		{"A", "C", 5},
	})

	d, err := dijkstra.ShortestDistance(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 3.0, d, "detour A-B-C beats direct A-C")

	// Symmetric on an undirected graph.
	d, err = dijkstra.ShortestDistance(g, "C", "A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
}

// TestShortestDistance_TrivialAndDirect covers self-distance and single hops.
func TestShortestDistance_TrivialAndDirect(t *testing.T) {
	g := build(t, [][3]interface{}{{"A", "B", 4}})

	d, err := dijkstra.ShortestDistance(g, "A", "A")
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = dijkstra.ShortestDistance(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)
}

// TestShortestDistance_Directed honors edge direction.
func TestShortestDistance_Directed(t *testing.T) {
	g := weighted.New(weighted.WithDirected(true))
	for _, id := range []string{"A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 2))

	d, err := dijkstra.ShortestDistance(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)

	// No reverse edge: B cannot reach A.
	d, err = dijkstra.ShortestDistance(g, "B", "A")
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1), "unreachable target must be +Inf")
}

// TestShortestDistance_Unreachable returns +Inf across components.
func TestShortestDistance_Unreachable(t *testing.T) {
	g := weighted.New()
	for _, id := range []string{"A", "B", "X", "Y"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("X", "Y", 1))

	d, err := dijkstra.ShortestDistance(g, "A", "Y")
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

// TestShortestDistance_Errors covers nil graphs, absent endpoints, and
// negative weights.
func TestShortestDistance_Errors(t *testing.T) {
	_, err := dijkstra.ShortestDistance(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := build(t, [][3]interface{}{{"A", "B", 1}})
	_, err = dijkstra.ShortestDistance(g, "missing", "B")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.ShortestDistance(g, "A", "missing")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	neg := weighted.New()
	require.NoError(t, neg.AddVertex("A"))
	require.NoError(t, neg.AddVertex("B"))
	require.NoError(t, neg.AddEdge("A", "B", -1))
	_, err = dijkstra.ShortestDistance(neg, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestShortestDistance_LargerNetwork pins a multi-branch route choice.
func TestShortestDistance_LargerNetwork(t *testing.T) {
	//	 A ─1─ B ─1─ C
	//	 │           │
	//	 10          1
	//	 │           │
	//	 D ────2──── E
	g := build(t, [][3]interface{}{
		{"A", "B", 1},
		{"B", "C", 1},
		{"A", "D", 10},
		{"C", "E", 1},
		{"D", "E", 2},
	})

	d, err := dijkstra.ShortestDistance(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, 5.0, d, "A-B-C-E-D (5) beats A-D (10)")
}
