package mst

import (
	"sort"

	"github.com/katalvlaran/adjax/weighted"
)

// unionFind is a disjoint-set forest over vertex IDs, with path compression
// and union by rank. The optimizations change nothing observable relative to
// a plain parent walk — the same edges are accepted either way.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

// newUnionFind places every ID in its own singleton set.
func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}

	return uf
}

// find returns the root of u's set, halving the path on the way up.
func (uf *unionFind) find(u string) string {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v, attaching the shallower tree under the
// deeper root. Reports whether a merge happened (false: already one set).
func (uf *unionFind) union(u, v string) bool {
	rootU, rootV := uf.find(u), uf.find(v)
	if rootU == rootV {
		return false
	}
	if uf.rank[rootU] < uf.rank[rootV] {
		rootU, rootV = rootV, rootU
	}
	uf.parent[rootV] = rootU
	if uf.rank[rootU] == uf.rank[rootV] {
		uf.rank[rootU]++
	}

	return true
}

// Kruskal computes the minimum spanning tree of an undirected weighted graph.
// Returns the accepted edges (in acceptance order) and their total weight.
//
// Every neighbor record from every vertex is eligible — for undirected
// graphs that includes the mirror copy of each edge, which union-find skips
// since its endpoints are already connected. Self-loops can never join two
// sets and are filtered up front. The sort is stable, so equal weights keep
// edge insertion order.
//
// Returns ErrInvalidGraph for nil or directed graphs and ErrDisconnected
// when fewer than |V|-1 edges can be accepted. A single-vertex graph yields
// an empty tree of weight zero.
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g *weighted.Graph) ([]weighted.Edge, float64, error) {
	if g == nil || g.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	ids := g.VertexIDs()
	if len(ids) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(ids) == 1 {
		return []weighted.Edge{}, 0, nil
	}

	all := g.Edges()
	edges := make([]weighted.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := newUnionFind(ids)
	tree := make([]weighted.Edge, 0, len(ids)-1)
	var total float64

	for _, e := range edges {
		if !uf.union(e.From, e.To) {
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(ids)-1 {
			break
		}
	}

	if len(tree) < len(ids)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
