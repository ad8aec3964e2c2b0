// Package bfs provides a production-grade breadth-first search over a
// core.Graph, returning unweighted shortest-path distances, parent links,
// and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from source; unreachable absent
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Distances(g, source) is the thin oracle form: just the Depth map.
//   - Supports an OnVisit hook (may abort with an error).
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Respects directed and undirected graphs.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - Foundation for the closeness package, which reads Depth maps per vertex.
//
// Determinism
//
//	Because core.NeighborIDs returns neighbors sorted ascending, and BFS
//	enqueues neighbors in that order, the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	dist, err := bfs.Distances(g, "source")
//	if err != nil {
//	    // handle one of:
//	    // ErrGraphNil, ErrSourceNotFound, ErrWeightedGraph, ErrOptionViolation, ErrNeighbors
//	}
package bfs
