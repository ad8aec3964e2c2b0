// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// config.go — internal configuration, deterministic defaults, and options.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn     = decimalID ("0","1","2",...)
//   • rng      = nil       (pure/deterministic unless seeded)
//   • weightFn = constant 1

package builder

import (
	"math/rand" // RNG for stochastic builders
	"strconv"   // decimal vertex IDs ("0","1",...)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn func(*rand.Rand) int64
}

// defaultConstWeight is the constant edge weight used on weighted graphs
// unless WithWeightFn overrides it.
const defaultConstWeight = int64(1)

// decimalID is the default vertex ID scheme: 0 → "0", 1 → "1", ...
func decimalID(i int) string { return strconv.Itoa(i) }

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeWeight resolves the weight for the next emitted edge under the graph's
// weighting policy: zero on unweighted graphs, cfg.weightFn otherwise.
func (c builderConfig) edgeWeight(weighted bool) int64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the (possibly nil) RNG and is consulted only on weighted graphs.
// Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
