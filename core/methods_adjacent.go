// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
//
// Determinism:
//   - Neighbors() sorts by destination ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
//
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks, matching the
//     lock order of mutating code paths.
package core

import "sort"

// Neighbors returns the edges traversable FROM the given vertex.
//
// Every returned Edge is freshly allocated and re-oriented so that From == id,
// regardless of the orientation the edge was originally added with. Directed
// edges arriving at id are not included. Results are sorted by To ascending.
//
// Errors:
//   - ErrEmptyVertexID  if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) where d = deg(id).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for to, e := range g.adjacency[id] {
		// Re-orient so traversal reads From==id → To==neighbor.
		out = append(out, &Edge{From: id, To: to, Weight: e.Weight, Directed: e.Directed})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable from id over a single
// edge, sorted lexicographically ascending.
// Errors propagate from Neighbors.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.To)
	}
	// Neighbors already sorts by To and buckets are keyed by To, so the
	// result is unique and ordered.
	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to the sorted list
// of its traversable neighbor IDs. Returned slices are freshly allocated and
// safe to retain; map key iteration order is not deterministic (Go map rule).
// Complexity: O(V + E + Σ sort(deg(v))).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		buf := make([]string, 0, len(g.adjacency[id]))
		for to := range g.adjacency[id] {
			buf = append(buf, to)
		}
		sort.Strings(buf)
		result[id] = buf
	}

	return result
}
