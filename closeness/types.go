// Package closeness provides option types and error definitions
// for closeness-centrality computation over a core.Graph.
package closeness

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for closeness computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("closeness: graph is nil")

	// ErrStaleCache is returned by Update when the previous result's
	// key set does not match the graph's current vertex set.
	ErrStaleCache = errors.New("closeness: previous result does not match graph vertices")

	// ErrDirectedGraph is returned by Update on directed graphs;
	// incremental maintenance is defined for undirected graphs only.
	ErrDirectedGraph = errors.New("closeness: directed graphs not supported for incremental update")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closeness: invalid option supplied")
)

// ChangeOp distinguishes the two structural modifications Update accepts.
type ChangeOp uint8

const (
	// EdgeInserted marks the addition of a single edge.
	EdgeInserted ChangeOp = iota
	// EdgeRemoved marks the removal of a single edge.
	EdgeRemoved
)

// String implements fmt.Stringer for diagnostics.
func (op ChangeOp) String() string {
	switch op {
	case EdgeInserted:
		return "insert"
	case EdgeRemoved:
		return "remove"
	default:
		return fmt.Sprintf("ChangeOp(%d)", uint8(op))
	}
}

// EdgeChange describes exactly one structural modification: the edge
// (From, To) is either inserted into or removed from the graph.
// Multi-edge batches are not supported.
type EdgeChange struct {
	From string
	To   string
	Op   ChangeOp
}

// Option configures centrality computation via functional arguments.
// If an Option is invalid (e.g. non-positive worker count), it will be
// recorded internally and surfaced as ErrOptionViolation on invocation.
type Option func(*Options)

// Options holds parameters to customize centrality computation.
type Options struct {
	// Ctx allows cancellation and deadlines; forwarded to the
	// per-source distance traversals.
	Ctx context.Context

	// Weighted selects weighted shortest-path distances (edge weights)
	// instead of unweighted hop counts. Ignored by Update, which always
	// measures hop-count distances.
	Weighted bool

	// ComponentScaling applies the Wasserman-Faust factor (s-1)/(N-1),
	// penalizing scores computed over small connected components.
	// Enabled by default.
	ComponentScaling bool

	// Workers bounds the number of concurrent per-source traversals in
	// Closeness. 1 (the default) runs strictly serially. Update never
	// parallelizes: it mutates the graph transiently.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - unweighted hop-count distances
//   - Wasserman-Faust component scaling enabled
//   - serial execution (Workers == 1).
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Weighted:         false,
		ComponentScaling: true,
		Workers:          1,
		err:              nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeightedDistances switches Closeness to weighted shortest-path
// distances. The graph must be constructed with core.WithWeighted();
// otherwise the traversal's own error is propagated.
func WithWeightedDistances() Option {
	return func(o *Options) {
		o.Weighted = true
	}
}

// WithoutComponentScaling disables the Wasserman-Faust factor, yielding
// the raw (s-1)/T closeness per connected component.
func WithoutComponentScaling() Option {
	return func(o *Options) {
		o.ComponentScaling = false
	}
}

// WithWorkers bounds concurrent per-source traversals in Closeness.
//
//	n == 1: strictly serial (default)
//	n > 1:  up to n traversals in flight
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
