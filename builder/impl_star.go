// File: impl_star.go — implementation of the Star(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center".
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes Center -> leaf[i]; directed graphs also get leaf[i] -> Center.
//   - Weight policy: if g.Weighted() then round(cfg.weightFn(cfg.rng)) else 0.
package builder

import (
	"fmt"
	"math"

	"github.com/nmrassign/methylcsp/core"
)

const (
	methodStar    = "Star"
	minStarNodes  = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a star topology: one hub "Center"
// and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}

		useWeight := g.Weighted()
		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leafID, err)
			}

			var w int64
			if useWeight {
				w = int64(math.Round(cfg.weightFn(cfg.rng)))
			}
			if _, err := g.AddEdge(centerVertexID, leafID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodStar, centerVertexID, leafID, w, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(leafID, centerVertexID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodStar, leafID, centerVertexID, w, err)
				}
			}
		}

		return nil
	}
}
