// Package dijkstra defines sentinel errors for shortest-distance computation.
package dijkstra

import "errors"

// Sentinel errors returned by ShortestDistance.
var (
	// ErrNilGraph indicates that a nil *weighted.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates the start or target vertex is absent.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was detected;
	// Dijkstra's greedy settlement is unsound under negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)
