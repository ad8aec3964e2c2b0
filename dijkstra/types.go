// Package dijkstra defines configuration options and error definitions
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost distance from a single source vertex to
// all other reachable vertices in a graph with non-negative edge weights.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	– Space: O(V + E)           (distance map plus lazy priority queue)
//
// Options:
//
//	– Source:      ID of the starting vertex (must be non-empty and present).
//	– MaxDistance: optional cap on distances to explore; vertices beyond it
//	               are skipped. Must be ≥ 0; default math.MaxInt64 (no cap).
//	– Ctx:         cancellation context checked once per extraction.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Distances.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted
	// but Dijkstra requires weights to compute shortest paths.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the specified source vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// Source is the ID of the starting vertex.
	Source string

	// MaxDistance caps exploration; vertices whose shortest distance would
	// exceed this value are not finalized. Default math.MaxInt64 (no cap).
	MaxDistance int64

	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values are surfaced as ErrBadMaxDistance when Distances is invoked.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
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

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID. Use this as a starting point for further
// functional-options overrides.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.MaxInt64,
		Ctx:         context.Background(),
	}
}
