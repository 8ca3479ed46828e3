// File: impl_cycle.go — implementation of the Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   - Weight policy: if g.Weighted() then round(cfg.weightFn(cfg.rng)) else 0.
//   - Returns only sentinel errors; never panics at runtime.
package builder

import (
	"fmt"
	"math"

	"github.com/nmrassign/methylcsp/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn((i + 1) % n)

			var w int64
			if useWeight {
				w = int64(math.Round(cfg.weightFn(cfg.rng)))
			}
			if _, err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodCycle, uID, vID, w, err)
			}
		}

		return nil
	}
}
