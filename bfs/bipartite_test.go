package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjax/bfs"
	"github.com/katalvlaran/adjax/unweighted"
)

// TestIsBipartite_EvenOddCycles: an even cycle is 2-colorable, an odd one is not.
func TestIsBipartite_EvenOddCycles(t *testing.T) {
	even := cycle(t, "A", "B", "C", "D")
	ok, err := bfs.IsBipartite(even)
	require.NoError(t, err)
	assert.True(t, ok, "4-cycle must be bipartite")

	odd := cycle(t, "A", "B", "C")
	ok, err = bfs.IsBipartite(odd)
	require.NoError(t, err)
	assert.False(t, ok, "3-cycle must not be bipartite")
}

// TestIsBipartite_AllComponents plants the odd cycle in a second component to
// ensure coloring does not stop at the first one.
func TestIsBipartite_AllComponents(t *testing.T) {
	g := unweighted.New()
	// Component 1: a bipartite edge.
	require.NoError(t, g.AddVertex("X"))
	require.NoError(t, g.AddVertex("Y"))
	require.NoError(t, g.AddEdge("X", "Y"))
	// Component 2: a triangle.
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))

	ok, err := bfs.IsBipartite(g)
	require.NoError(t, err)
	assert.False(t, ok, "odd cycle in a later component must be detected")
}

// TestIsBipartite_Degenerate covers empty and edgeless graphs.
func TestIsBipartite_Degenerate(t *testing.T) {
	ok, err := bfs.IsBipartite(unweighted.New())
	require.NoError(t, err)
	assert.True(t, ok, "empty graph is vacuously bipartite")

	g := unweighted.New()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	ok, err = bfs.IsBipartite(g)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = bfs.IsBipartite(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestConnectedComponents verifies the partition property: components cover
// the vertex set and are pairwise disjoint.
func TestConnectedComponents(t *testing.T) {
	g := unweighted.New()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("C", "D"))

	comps, err := bfs.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}, {"E"}}, comps)

	seen := make(map[string]bool)
	for _, comp := range comps {
		for _, id := range comp {
			assert.Falsef(t, seen[id], "vertex %s appears in two components", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, g.VertexCount(), "components must cover every vertex")
}

// TestConnectedComponents_SingleComponent collapses to one set when connected.
func TestConnectedComponents_SingleComponent(t *testing.T) {
	comps, err := bfs.ConnectedComponents(cycle(t, "A", "B", "C", "D"))
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, comps[0])
}
