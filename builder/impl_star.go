// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - One hub with the fixed ID "Center", n-1 leaves via cfg.idFn(1..n-1).
//   - Emits spokes Center -> leaf in ascending leaf order; on directed graphs
//     the reverse spoke is added too, keeping the star symmetric.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vicinity/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// centerVertexID is the fixed, documented hub ID.
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
// Complexity: O(n) vertices + O(n) edges.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}

		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leafID, err)
			}

			w := cfg.edgeWeight(g.Weighted())
			if err := g.AddEdge(centerVertexID, leafID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodStar, centerVertexID, leafID, w, err)
			}
			// For directed graphs, add the reverse spoke to keep symmetry explicit.
			if g.Directed() {
				if err := g.AddEdge(leafID, centerVertexID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodStar, leafID, centerVertexID, w, err)
				}
			}
		}

		return nil
	}
}
