// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - Erdős–Rényi-like generator: each admissible edge included independently
//     with probability p.
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and needs no RNG.
//   - Undirected graphs sample unordered pairs {i,j} with i<j; directed graphs
//     sample ordered pairs, self-loops only when g.Looped().
//
// Determinism: fixed trial order (i asc, then j asc), so a fixed seed yields
// the same graph on every run.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vicinity/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
// Complexity: O(n) vertices + O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		// include decides one Bernoulli trial; deterministic for p ∈ {0,1}.
		include := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() <= p
			}
		}

		addEdge := func(u, v string) error {
			w := cfg.edgeWeight(g.Weighted())
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomSparse, u, v, w, err)
			}
			return nil
		}

		if g.Directed() {
			for i := 0; i < n; i++ {
				u := cfg.idFn(i)
				for j := 0; j < n; j++ {
					if i == j && !g.Looped() {
						continue
					}
					if include() {
						if err := addEdge(u, cfg.idFn(j)); err != nil {
							return err
						}
					}
				}
			}
			return nil
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if include() {
					if err := addEdge(u, cfg.idFn(j)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
