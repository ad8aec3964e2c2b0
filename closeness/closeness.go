// Package closeness implements closeness centrality: each vertex is
// ranked by the inverse of its average shortest-path distance to every
// other vertex it can reach.
package closeness

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vicinity/bfs"
	"github.com/katalvlaran/vicinity/core"
	"github.com/katalvlaran/vicinity/dijkstra"
)

// Closeness computes the closeness centrality of every vertex in g and
// returns a fresh map keyed by vertex ID, each value in [0, 1].
//
// For a vertex n with s reachable vertices (itself included) and total
// distance T to them, the raw score is (s-1)/T; with component scaling
// enabled (the default) it is further multiplied by (s-1)/(N-1), where N
// is the graph's vertex count, so vertices stranded in small components
// score lower than their component-local average suggests.
//
// On directed graphs the score ranks *incoming* distance: traversals run
// over an edge-reversed copy of g, and g itself is never modified.
//
// Per-source traversals are independent; WithWorkers(n) runs up to n of
// them concurrently. Vertices with a zero distance sum, and every vertex
// of a single-vertex graph, score 0.
//
// Complexity: O(V·(V+E)) unweighted, O(V·(E+V log V)) weighted.
func Closeness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}

	return closenessAll(g, o)
}

// ClosenessOf computes the closeness centrality of a single vertex,
// under the same semantics as Closeness. The traversal's own error is
// propagated when id is absent from the graph.
func ClosenessOf(g *core.Graph, id string, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if g == nil {
		return 0, ErrGraphNil
	}

	return scoreOf(traversalView(g), id, g.VertexCount(), o)
}

// closenessAll scores every vertex of g under pre-validated options.
func closenessAll(g *core.Graph, o Options) (map[string]float64, error) {
	view := traversalView(g)
	ids := g.Vertices()
	n := len(ids)
	result := make(map[string]float64, n)

	// Serial path: deterministic, no goroutine overhead.
	if o.Workers <= 1 {
		for _, id := range ids {
			c, err := scoreOf(view, id, n, o)
			if err != nil {
				return nil, err
			}
			result[id] = c
		}

		return result, nil
	}

	// Parallel path: per-source traversals only read the (immutable
	// for the duration of this call) view, so the sole shared state is
	// the result map.
	var (
		mu sync.Mutex
		eg errgroup.Group
	)
	eg.SetLimit(o.Workers)
	for _, id := range ids {
		id := id
		eg.Go(func() error {
			c, err := scoreOf(view, id, n, o)
			if err != nil {
				return err
			}
			mu.Lock()
			result[id] = c
			mu.Unlock()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// traversalView returns the graph traversals should run over: g itself
// when undirected, an edge-reversed copy when directed (closeness ranks
// by incoming distance, and g must stay untouched).
func traversalView(g *core.Graph) *core.Graph {
	if g.Directed() {
		return core.ReversedView(g)
	}

	return g
}

// scoreOf computes one vertex's closeness over view; n is the vertex
// count of the original graph (the Wasserman-Faust denominator).
func scoreOf(view *core.Graph, source string, n int, o Options) (float64, error) {
	dist, err := distancesFrom(view, source, o)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, d := range dist {
		total += d
	}
	s := len(dist) // reachable set, source included at distance 0

	if total <= 0 || n <= 1 {
		return 0, nil
	}

	c := float64(s-1) / float64(total)
	if o.ComponentScaling {
		c *= float64(s-1) / float64(n-1)
	}

	return c, nil
}

// distancesFrom dispatches to the hop-count or weighted shortest-path
// oracle; unreachable vertices are absent from the returned map.
func distancesFrom(g *core.Graph, source string, o Options) (map[string]int64, error) {
	if o.Weighted {
		return dijkstra.Distances(g, dijkstra.Source(source), dijkstra.WithContext(o.Ctx))
	}

	depth, err := bfs.Distances(g, source, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	dist := make(map[string]int64, len(depth))
	for id, d := range depth {
		dist[id] = int64(d)
	}

	return dist, nil
}
