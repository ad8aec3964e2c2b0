// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Returns ErrEmptyVertexID if id == "". Lock order is muVert → muEdgeAdj,
// matching every other mutating code path.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	// No-op for an existing vertex.
	if _, exists := g.vertices[id]; exists {
		return nil
	}

	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Bootstrap the adjacency bucket so edge methods can rely on it existing.
	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]*Edge)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges (directed and undirected).
//
// Returns ErrEmptyVertexID for an empty ID and ErrVertexNotFound when the
// vertex does not exist. Removal is atomic: both locks are held for the
// duration of the topology rewrite.
// Complexity: O(deg(v)) plus the reverse-scan for incoming directed edges.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Drop every edge leaving id; mirrored entries are removed alongside.
	for to, e := range g.adjacency[id] {
		if !e.Directed && to != id {
			delete(g.adjacency[to], id)
		}
		g.edgeCount--
	}
	delete(g.adjacency, id)

	// Drop edges arriving at id from elsewhere. Undirected mirrors were
	// already cleared above, so anything left here is a directed edge.
	for _, bucket := range g.adjacency {
		if _, ok := bucket[id]; ok {
			delete(bucket, id)
			g.edgeCount--
		}
	}

	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Rely on the ordering for reproducible traversal seeds and stable tests.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Prefer this over len(Vertices()) to avoid the sorting cost.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the vertex catalog (ID → *Vertex).
// Callers may retain the map; vertex pointers are read-only by convention.
// Complexity: O(V).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}
