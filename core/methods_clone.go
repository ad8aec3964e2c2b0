// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
package core

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	// Copy configuration via options
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)

	// Copy vertices; Metadata is shared by design (shallow clone).
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]*Edge)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// and adjacency. Edge structs are duplicated, never shared with the source.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for from, bucket := range g.adjacency {
		for to, e := range bucket {
			if e.From != from {
				continue // mirrored half; linked below
			}
			ne := &Edge{From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
			clone.adjacency[from][to] = ne
			if !ne.Directed && from != to {
				clone.adjacency[to][from] = ne
			}
			clone.edgeCount++
		}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration
// flags (Directed/Weighted/Loops).
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.adjacency = make(map[string]map[string]*Edge)
	g.edgeCount = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
