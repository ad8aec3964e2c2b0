// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.edgeWeight(g.Weighted()).
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vicinity/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
// Complexity: O(n) vertices + O(n-1) edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, cfg.idFn(i), err)
			}
		}

		// Emit path edges 0->1->2->...->(n-1) in stable order.
		for i := 1; i < n; i++ {
			uID, vID := cfg.idFn(i-1), cfg.idFn(i)
			w := cfg.edgeWeight(g.Weighted())
			if err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodPath, uID, vID, w, err)
			}
		}

		return nil
	}
}
