// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Distances processes vertices in order of increasing distance using a
// min-heap priority queue with the lazy-decrease-key strategy: shorter paths
// push duplicate entries, and stale entries are ignored when popped.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and fails fast.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - The returned map contains only vertices actually reached, so its size is
//     the size of the source's reachable set (source included at distance 0).
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/vicinity/core"
)

// Distances computes shortest distances from the source vertex (Options.Source)
// to every reachable vertex in the weighted graph g. Unreachable vertices are
// absent from the result.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *core.Graph, opts ...Option) (map[string]int64, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate graph supports weights
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 5) Validate Source exists in the graph
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	// 6) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 7) Run the main loop.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, g.VertexCount()),
		pq:      make(nodePQ, 0, g.VertexCount()),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph      // the input graph; read-only within Distances
	options Options          // configuration (Source, MaxDistance, Ctx)
	dist    map[string]int64 // vertex ID → finalized distance from Source
	pq      nodePQ           // min-heap of *nodeItem for the lazy priority queue
}

// init seeds the heap with the source at distance 0.
//
// Unlike a dense-initialization variant, dist starts empty: a vertex gains an
// entry only once its distance is finalized, which is what lets callers treat
// absence as unreachability.
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum tentative distance
// and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The context is cancelled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// cancellation check (once per extraction)
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries: the vertex was already finalized with a
		// shorter (or equal) distance.
		if _, done := r.dist[item.id]; done {
			continue
		}

		// Nothing closer remains; stop exploring beyond the cap.
		if item.dist > r.options.MaxDistance {
			break
		}

		// Finalize.
		r.dist[item.id] = item.dist

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u and pushes improved
// tentative distances for its neighbors. Assumes dist[u] is finalized.
func (r *runner) relax(u string) error {
	// core.Neighbors re-orients every incident traversable edge to From==u.
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	base := r.dist[u]
	for _, e := range neighbors {
		// Safety check: the pre-scan already rejected negative weights.
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}

		// Already finalized neighbors cannot improve.
		if _, done := r.dist[e.To]; done {
			continue
		}

		newDist := base + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}

		// Lazy decrease-key: push a fresh entry; stale ones are skipped on pop.
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
