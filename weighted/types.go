// Package weighted declares the Graph and Vertex types, the Edge record,
// sentinel errors, and the functional options accepted by New.
package weighted

import "errors"

// Sentinel errors for weighted graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("weighted: vertex ID is empty")

	// ErrVertexExists indicates AddVertex was called with an already
	// registered ID; the existing vertex and its edges are untouched.
	ErrVertexExists = errors.New("weighted: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("weighted: vertex not found")
)

// Edge is one directed neighbor record: From's map names To with Weight.
// For undirected graphs each stored edge surfaces twice in Edges(), once per
// endpoint.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithDirected sets the directedness of the Graph
// (true = directed, false = undirected). Immutable after New.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Vertex is a node entity owning its neighbor weight map.
// Neighbor entries reference other vertices by ID only; the Vertex never
// holds pointers into the graph catalog.
type Vertex struct {
	id      string
	weights map[string]float64 // neighbor ID → edge weight
	order   []string           // neighbor IDs in insertion order
}

// Graph is an adjacency-list graph whose edges carry float64 weights.
type Graph struct {
	directed bool               // immutable after New
	vertices map[string]*Vertex // vertex ID → entity
	order    []string           // vertex IDs in insertion order
}

// New creates an empty Graph. By default the Graph is undirected.
// Complexity: O(1)
func New(opts ...Option) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
