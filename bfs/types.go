// Package bfs defines options, result types, and error definitions
// for breadth-first algorithms over an unweighted.Graph.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrPathNotFound is returned by ShortestPath when the target is never reached.
	ErrPathNotFound = errors.New("bfs: no path to target")

	// ErrNegativeDistance is returned by VerticesAtDistance for n < 0.
	ErrNegativeDistance = errors.New("bfs: distance cannot be negative")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called for each vertex in first-discovery order with its hop
	// depth from the start. Returning an error aborts the traversal and
	// propagates that error.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string, int) error { return nil },
	}
}

// WithOnVisit registers a callback invoked on every visit; returning an error
// from the callback stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in first-discovery order, start first.
//   - Depth: map from vertex ID to its hop distance from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree
//     (the start vertex has no entry).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}
