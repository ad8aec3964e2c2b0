package closeness

import (
	"fmt"

	"github.com/katalvlaran/vicinity/core"
)

// Update maintains a closeness-centrality map across a single edge
// change without recomputing the whole graph, and returns a freshly
// allocated map that is vertex-for-vertex identical to what Closeness
// would produce on the changed graph.
//
// prev is the map a previous Closeness or Update call produced for g in
// its current state; its key set must equal g's vertex set exactly, or
// Update fails with ErrStaleCache before touching the graph. Passing a
// nil prev opts out of incremental tracking: the change is applied
// permanently and the result recomputed from scratch.
//
// With prev supplied, the change is applied transiently: Update borrows
// g exclusively for the duration of the call and restores its edge set
// exactly before returning, on every exit path, including errors raised
// mid-recompute. Callers must serialize Update against any concurrent
// reader or writer of the same graph.
//
// The incremental path measures hop-count distances from the changed
// edge's endpoints on the graph without that edge (before an insertion
// takes effect, after a removal does). A vertex reachable from both
// endpoints whose two distances differ by at most one hop cannot have
// had its distance sum altered by a single-edge change, so its prior
// score is carried over; every other vertex is rescored from scratch.
//
// Update is undirected-only (ErrDirectedGraph) and always uses
// unweighted distances; mutation errors from the graph (duplicate edge
// on insert, missing edge on remove) are propagated unchanged.
func Update(g *core.Graph, change EdgeChange, prev map[string]float64, opts ...Option) (result map[string]float64, err error) {
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
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	// The distance-delta bound below is a statement about hop counts.
	o.Weighted = false

	// No cache: apply the change for good and recompute everything.
	if prev == nil {
		if _, err = applyChange(g, change); err != nil {
			return nil, err
		}

		return closenessAll(g, o)
	}

	if err = validateCache(g, prev); err != nil {
		return nil, err
	}

	var (
		du, dv  map[string]int64
		restore func() error
	)
	switch change.Op {
	case EdgeInserted:
		// Endpoint distances are taken while the edge is still absent.
		if du, err = distancesFrom(g, change.From, o); err != nil {
			return nil, err
		}
		if dv, err = distancesFrom(g, change.To, o); err != nil {
			return nil, err
		}
		if restore, err = applyChange(g, change); err != nil {
			return nil, err
		}
	case EdgeRemoved:
		if restore, err = applyChange(g, change); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown change op %s", ErrOptionViolation, change.Op)
	}

	// The graph now carries the change; undo it on every exit below.
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			result, err = nil, rerr
		}
	}()

	if change.Op == EdgeRemoved {
		if du, err = distancesFrom(g, change.From, o); err != nil {
			return nil, err
		}
		if dv, err = distancesFrom(g, change.To, o); err != nil {
			return nil, err
		}
	}

	n := g.VertexCount()
	result = make(map[string]float64, n)
	for _, id := range g.Vertices() {
		fu, okU := du[id]
		fv, okV := dv[id]
		if okU && okV && absDelta(fu, fv) <= 1 {
			// A single-edge change shifts any shortest path by at most
			// one hop, so this vertex's distance sum is unchanged.
			result[id] = prev[id]
			continue
		}

		var c float64
		if c, err = scoreOf(g, id, n, o); err != nil {
			return nil, err
		}
		result[id] = c
	}

	return result, nil
}

// validateCache checks that prev's key set equals g's vertex set.
func validateCache(g *core.Graph, prev map[string]float64) error {
	if got, want := len(prev), g.VertexCount(); got != want {
		return fmt.Errorf("%w: %d cached vs %d current vertices", ErrStaleCache, got, want)
	}
	for _, id := range g.Vertices() {
		if _, ok := prev[id]; !ok {
			return fmt.Errorf("%w: vertex %q absent from cache", ErrStaleCache, id)
		}
	}

	return nil
}

// applyChange performs the structural modification described by ch and
// returns a restore closure that puts the graph's vertex and edge sets
// back exactly as they were before the call.
func applyChange(g *core.Graph, ch EdgeChange) (func() error, error) {
	switch ch.Op {
	case EdgeInserted:
		// AddEdge bootstraps missing endpoints; remember which existed
		// so restore can drop the ones it created.
		hadFrom, hadTo := g.HasVertex(ch.From), g.HasVertex(ch.To)
		if err := g.AddEdge(ch.From, ch.To, 0); err != nil {
			return nil, err
		}

		return func() error {
			if err := g.RemoveEdge(ch.From, ch.To); err != nil {
				return err
			}
			if !hadFrom {
				if err := g.RemoveVertex(ch.From); err != nil {
					return err
				}
			}
			if !hadTo && ch.To != ch.From {
				if err := g.RemoveVertex(ch.To); err != nil {
					return err
				}
			}

			return nil
		}, nil

	case EdgeRemoved:
		// GetEdge/RemoveEdge accept either orientation on undirected
		// graphs; restore must use the stored one, not the change's.
		e, err := g.GetEdge(ch.From, ch.To)
		if err != nil {
			return nil, err
		}
		from, to, w := e.From, e.To, e.Weight
		if err = g.RemoveEdge(ch.From, ch.To); err != nil {
			return nil, err
		}

		return func() error { return g.AddEdge(from, to, w) }, nil

	default:
		return nil, fmt.Errorf("%w: unknown change op %s", ErrOptionViolation, ch.Op)
	}
}

func absDelta(a, b int64) int64 {
	if a > b {
		return a - b
	}

	return b - a
}
