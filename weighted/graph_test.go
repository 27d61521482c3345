package weighted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjax/weighted"
)

// TestAddVertex covers registration, the re-add failure indicator, and empty IDs.
func TestAddVertex(t *testing.T) {
	g := weighted.New()

	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))

	assert.ErrorIs(t, g.AddVertex(""), weighted.ErrEmptyVertexID)

	// Re-adding is reported as a failure and must not reset the vertex.
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B", 2))
	assert.ErrorIs(t, g.AddVertex("A"), weighted.ErrVertexExists)
	v, ok := g.Vertex("A")
	require.True(t, ok)
	assert.Equal(t, []string{"B"}, v.Neighbors(), "re-add must not clear edges")
}

// TestAddEdge_EndpointValidation: both endpoints must pre-exist.
func TestAddEdge_EndpointValidation(t *testing.T) {
	g := weighted.New()
	require.NoError(t, g.AddVertex("A"))

	assert.ErrorIs(t, g.AddEdge("A", "ghost", 1), weighted.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("ghost", "A", 1), weighted.ErrVertexNotFound)

	// The failed inserts left no partial state behind.
	v, _ := g.Vertex("A")
	assert.Empty(t, v.Neighbors())
}

// TestAddEdge_UndirectedMirror: one insert populates both neighbor maps.
func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := weighted.New()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B", 7))

	a, _ := g.Vertex("A")
	b, _ := g.Vertex("B")
	wAB, ok := a.Weight("B")
	require.True(t, ok)
	wBA, ok := b.Weight("A")
	require.True(t, ok)
	assert.Equal(t, 7.0, wAB)
	assert.Equal(t, wAB, wBA, "mirror entry must carry the same weight")
}

// TestAddEdge_FirstWeightWins: duplicate neighbors are silent no-ops.
func TestAddEdge_FirstWeightWins(t *testing.T) {
	g := weighted.New(weighted.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("A", "B", 99))

	a, _ := g.Vertex("A")
	w, ok := a.Weight("B")
	require.True(t, ok)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, []string{"B"}, a.Neighbors(), "no duplicate entry")
}

// TestAddEdge_Directed: no mirror entry is created.
func TestAddEdge_Directed(t *testing.T) {
	g := weighted.New(weighted.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B", 1))

	b, _ := g.Vertex("B")
	_, ok := b.Weight("A")
	assert.False(t, ok)
}

// TestVertices_InsertionOrder: enumeration follows AddVertex order.
func TestVertices_InsertionOrder(t *testing.T) {
	g := weighted.New()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}

	assert.Equal(t, []string{"C", "A", "B"}, g.VertexIDs())
	vs := g.Vertices()
	require.Len(t, vs, 3)
	assert.Equal(t, "C", vs[0].ID())
	assert.Equal(t, 3, g.VertexCount())
}

// TestEdges enumerates records deterministically, mirrors included.
func TestEdges(t *testing.T) {
	g := weighted.New()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))

	assert.Equal(t, []weighted.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "A", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "B", Weight: 2},
	}, g.Edges())
}
