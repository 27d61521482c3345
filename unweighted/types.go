// Package unweighted declares the Graph type, its sentinel errors,
// and the functional options accepted by New.
package unweighted

import "errors"

// Sentinel errors for unweighted graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("unweighted: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("unweighted: vertex not found")
)

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithDirected sets the directedness of the Graph
// (true = directed, false = undirected). Immutable after New.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an adjacency-list graph without edge weights.
//
// adj maps each vertex ID to its ordered neighbor sequence; order records
// vertex insertion order so enumeration does not depend on map iteration.
// Values in adj may reference IDs not (yet) registered as vertices: AddEdge
// validates only its start endpoint, mirroring the construction contract.
type Graph struct {
	directed bool                // immutable after New
	adj      map[string][]string // vertex ID → neighbor IDs, insertion order
	order    []string            // vertex IDs in insertion order
}

// New creates an empty Graph. By default the Graph is undirected.
// Complexity: O(1)
func New(opts ...Option) *Graph {
	g := &Graph{
		adj: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
