// File: impl_complete.go — implementation of the Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j}, i<j exactly once; mirrored j->i when directed.
//   - Weight policy: if g.Weighted() then round(cfg.weightFn(cfg.rng)) else 0.
package builder

import (
	"fmt"
	"math"

	"github.com/nmrassign/methylcsp/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}

		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			u := ids[i]
			for j := i + 1; j < n; j++ {
				v := ids[j]

				var w int64
				if useWeight {
					w = int64(math.Round(cfg.weightFn(cfg.rng)))
				}
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodComplete, u, v, w, err)
				}
				if g.Directed() {
					if _, err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodComplete, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}
