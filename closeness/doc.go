// Package closeness computes and incrementally maintains closeness
// centrality over a core.Graph.
//
// What
//
//   - Closeness(g) scores every vertex: (s-1)/T over its reachable set,
//     where s is the reachable-set size (self included) and T the summed
//     shortest-path distance; Wasserman-Faust component scaling
//     ((s-1)/(N-1)) is applied by default and can be disabled with
//     WithoutComponentScaling().
//   - ClosenessOf(g, id) is the single-vertex form, returning a scalar.
//   - Update(g, change, prev) refreshes an existing centrality map after
//     one edge insertion or removal, rescoring only the vertices the
//     change could actually have affected and copying the rest from prev.
//   - Distances are hop counts by default; WithWeightedDistances()
//     switches Closeness/ClosenessOf to Dijkstra over edge weights.
//   - Directed graphs are scored by incoming distance via an
//     edge-reversed copy. Update accepts undirected graphs only.
//
// Why
//
//   - Batch recomputation is O(V·(V+E)); after a single edge change most
//     vertices' distance sums provably cannot move, so Update re-runs
//     the per-vertex traversal only where a hop-count argument fails to
//     rule change out.
//
// Transient mutation
//
//	Update applies the edge change to the caller's graph, measures, and
//	restores the exact pre-call vertex and edge sets before returning —
//	on success and on every error path after the mutation. One Update
//	call therefore needs exclusive access to its graph; concurrent calls
//	on the same graph must be serialized by the caller.
//
// Determinism
//
//	Vertex iteration follows core.Vertices() (sorted ascending), so
//	serial runs are fully reproducible; WithWorkers(n) parallelizes
//	Closeness without changing the resulting map.
//
// Usage
//
//	cent, err := closeness.Closeness(g)
//	...
//	cent, err = closeness.Update(g, closeness.EdgeChange{
//	    From: "2", To: "7", Op: closeness.EdgeInserted,
//	}, cent)
package closeness
