// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.
//
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import "sort"

// AddEdge creates the edge from→to with the given weight.
//
// Endpoints are created on demand (AddVertex is idempotent). On undirected
// graphs the edge is mirrored in the adjacency index, so HasEdge answers in
// both directions afterwards.
//
// Errors:
//   - ErrEmptyVertexID  if either endpoint ID is empty.
//   - ErrBadWeight      if weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrDuplicateEdge  if an edge already joins from→to (either orientation
//     on undirected graphs).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 { // weight constraint
		return ErrBadWeight
	}
	if from == to && !g.allowLoops { // loop constraint
		return ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return ErrDuplicateEdge
	}

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	g.adjacency[from][to] = e

	// Mirror undirected non-loop edges; both entries share one *Edge.
	if !e.Directed && from != to {
		g.adjacency[to][from] = e
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge from→to and its undirected mirror.
// Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	if !e.Directed && from != to {
		delete(g.adjacency[to], from)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether an edge from→to exists. Undirected edges are
// mirrored by AddEdge, so HasEdge works in both directions for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// GetEdge returns the edge joining from→to, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1).
func (g *Graph) GetEdge(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every distinct edge sorted by (From, To) ascending.
// Mirrored undirected entries are reported once, under the orientation the
// edge was added with.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, g.edgeCount)
	for from, bucket := range g.adjacency {
		for _, e := range bucket {
			// Skip the mirrored half of undirected edges.
			if e.From != from {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the total number of distinct edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
