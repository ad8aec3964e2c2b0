// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Preserves endpoints, weights and directedness per documented rules.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
package core

// ReversedView returns a new Graph with identical vertices in which every
// directed edge's endpoints are swapped. Undirected edges are carried over
// unchanged (reversal is a no-op for them). The input graph is not mutated:
// traversals over the view observe incoming distances of the original.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func ReversedView(g *Graph) *Graph {
	out := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for from, bucket := range g.adjacency {
		for _, e := range bucket {
			if e.From != from {
				continue // mirrored half of an undirected edge
			}
			ne := &Edge{From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
			if ne.Directed {
				ne.From, ne.To = ne.To, ne.From
			}
			out.adjacency[ne.From][ne.To] = ne
			if !ne.Directed && ne.From != ne.To {
				out.adjacency[ne.To][ne.From] = ne
			}
			out.edgeCount++
		}
	}

	return out
}

// UnweightedView returns a new Graph with identical topology but with all
// edge weights set to zero and the weighted flag turned off. The input graph
// is not mutated. Endpoints and directedness are preserved.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func UnweightedView(g *Graph) *Graph {
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacency[id] = make(map[string]*Edge)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for from, bucket := range g.adjacency {
		for to, e := range bucket {
			if e.From != from {
				continue
			}
			// Force weight to zero; endpoints and directedness are preserved.
			ne := &Edge{From: e.From, To: e.To, Weight: 0, Directed: e.Directed}
			out.adjacency[from][to] = ne
			if !ne.Directed && from != to {
				out.adjacency[to][from] = ne
			}
			out.edgeCount++
		}
	}

	return out
}
