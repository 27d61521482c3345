// Package dfs defines the visitation states and sentinel errors shared by
// FindPath, HasCycle, and TopologicalSort.
package dfs

import "errors"

// Visitation states for three-color depth-first traversal.
const (
	white = iota // not yet visited
	gray         // on the traversal stack (in progress)
	black        // fully explored
)

// Sentinel errors for depth-first algorithms.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrPathNotFound is returned by FindPath when the target is unreachable.
	ErrPathNotFound = errors.New("dfs: no path to target")

	// ErrCycleDetected indicates TopologicalSort was asked to order a cyclic graph.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph indicates TopologicalSort was given an undirected graph.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires directed graph")
)
