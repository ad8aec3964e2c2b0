// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits ring edges i -> (i+1) mod n for i=0..n-1 in stable order.
//   - Weight policy: cfg.edgeWeight(g.Weighted()).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vicinity/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Complexity: O(n) vertices + O(n) edges.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, cfg.idFn(i), err)
			}
		}

		for i := 0; i < n; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn((i+1)%n)
			w := cfg.edgeWeight(g.Weighted())
			if err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCycle, uID, vID, w, err)
			}
		}

		return nil
	}
}
