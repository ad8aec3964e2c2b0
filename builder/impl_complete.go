// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges i -> j for every i < j in lexicographic (i,j) order.
//   - On directed graphs both orientations are emitted, keeping every ordered
//     pair connected.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vicinity/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete graph K_n.
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, cfg.idFn(i), err)
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				uID, vID := cfg.idFn(i), cfg.idFn(j)
				w := cfg.edgeWeight(g.Weighted())
				if err := g.AddEdge(uID, vID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodComplete, uID, vID, w, err)
				}
				if directed {
					if err := g.AddEdge(vID, uID, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodComplete, vID, uID, w, err)
					}
				}
			}
		}

		return nil
	}
}
