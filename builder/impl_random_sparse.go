// File: impl_random_sparse.go — implementation of RandomSparse(n, p).
//
// Erdos-Renyi-style generator: include each admissible edge independently
// with probability p. Undirected iterates unordered pairs {i,j}, i<j;
// directed iterates ordered pairs (i,j) and allows self-loops iff g.Looped().
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//   - Weight policy: if g.Weighted() then round(cfg.weightFn(rng)) else 0.
package builder

import (
	"fmt"
	"math"

	"github.com/nmrassign/methylcsp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdos-Renyi-style graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		useWeight := g.Weighted()
		rng := cfg.rng
		loops := g.Looped()
		directed := g.Directed()

		weightAt := func() int64 {
			if !useWeight {
				return 0
			}
			return int64(math.Round(cfg.weightFn(rng)))
		}
		include := func(i, j int) bool {
			if rng == nil {
				return p == 1.0
			}
			return rng.Float64() <= p
		}

		if directed {
			for i := 0; i < n; i++ {
				u := cfg.idFn(i)
				for j := 0; j < n; j++ {
					if i == j && !loops {
						continue
					}
					if !include(i, j) {
						continue
					}
					v := cfg.idFn(j)
					w := weightAt()
					if _, err := g.AddEdge(u, v, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodRandomSparse, u, v, w, err)
					}
				}
			}
			return nil
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if !include(i, j) {
					continue
				}
				v := cfg.idFn(j)
				w := weightAt()
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
