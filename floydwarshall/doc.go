// Package floydwarshall computes all-pairs shortest distances on a
// weighted.Graph.
//
// What
//
//   - Distances(g): a nested map dist[i][j] holding the weight of the
//     cheapest route from i to j, +Inf when no route exists.
//
// How
//
//	The distance table is seeded before relaxation: dist[i][i] = 0 for every
//	vertex, dist[i][j] = weight(i,j) for every direct neighbor record, +Inf
//	elsewhere. Without the seed there is no finite base case and the triple
//	loop would propagate nothing but +Inf. Then the canonical k→i→j loop
//	relaxes dist[i][j] against dist[i][k]+dist[k][j], strict improvement only.
//
// Properties
//
//	On the result, dist[i][i] == 0 for all i, and the table is a fixed point
//	of relaxation: dist[i][j] <= dist[i][k] + dist[k][j] for all i, j, k.
//	Negative edge weights are tolerated as long as no negative cycle exists;
//	this package does not detect negative cycles.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V³)
//   - Memory: O(V²)
package floydwarshall
