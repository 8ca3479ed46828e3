package flow

import (
	"context"

	"github.com/nmrassign/methylcsp/core"
)

// buildCapMap aggregates g's edges into capMap[u][v] = total integer
// capacity u->v, summing parallel edges and dropping self-loops and any
// total at or below opts.Epsilon. Negative per-edge capacity is rejected.
func buildCapMap(ctx context.Context, g *core.Graph, opts FlowOptions) (map[string]map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	capMap := make(map[string]map[string]int64, len(vertices))
	for _, u := range vertices {
		capMap[u] = make(map[string]int64)
	}

	for _, u := range vertices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range neighbors {
			if e.From == e.To {
				continue
			}
			if e.Weight < 0 {
				return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
			}
			capMap[u][e.To] += e.Weight
		}
	}

	for u, inner := range capMap {
		for v, c := range inner {
			if c <= opts.Epsilon {
				delete(capMap[u], v)
			}
		}
	}

	return capMap, nil
}

// buildResidualGraph constructs a new *core.Graph from capMap, inheriting
// g's configuration flags via CloneEmpty.
func buildResidualGraph(capMap map[string]map[string]int64, g *core.Graph) (*core.Graph, error) {
	residual := g.CloneEmpty()
	for u, inner := range capMap {
		for v, c := range inner {
			if c <= 0 {
				continue
			}
			if _, err := residual.AddEdge(u, v, c); err != nil {
				return nil, err
			}
		}
	}

	return residual, nil
}
