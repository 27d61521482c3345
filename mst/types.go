// Package mst defines sentinel errors shared by Kruskal and Prim.
package mst

import "errors"

// Sentinel errors for minimum-spanning-tree construction.
var (
	// ErrInvalidGraph indicates that MST algorithms require a non-nil,
	// undirected graph.
	ErrInvalidGraph = errors.New("mst: MST requires undirected graph")

	// ErrDisconnected indicates that the graph admits no spanning tree:
	// fewer than |V|-1 tree edges can ever be collected.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)
