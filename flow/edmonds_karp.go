// File: edmonds_karp.go — Edmonds-Karp maximum flow.
package flow

import (
	"context"
	"fmt"

	"github.com/nmrassign/methylcsp/core"
)

// EdmondsKarp computes the maximum flow from source to sink in g using
// repeated BFS augmentation (Edmonds-Karp). g's edge weights are taken as
// capacities; parallel edges between the same pair are summed. The
// returned residual graph holds remaining capacity on every edge that
// still admits flow, plus the reverse arcs created while augmenting.
//
// ctx is checked between augmenting-path searches; a cancelled ctx
// aborts with the flow accumulated so far and ctx.Err().
//
// Complexity: O(V * E^2). Memory: O(V + E).
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string, opts FlowOptions) (int64, *core.Graph, error) {
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	capMap, err := buildCapMap(ctx, g, opts)
	if err != nil {
		return 0, nil, err
	}

	var maxFlow int64
	for {
		if err := ctx.Err(); err != nil {
			residual, buildErr := buildResidualGraph(capMap, g)
			if buildErr != nil {
				return maxFlow, nil, buildErr
			}
			return maxFlow, residual, err
		}

		path, bottleneck := bfsAugmentingPath(capMap, source, sink)
		if path == nil {
			break
		}

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottleneck
			if capMap[u][v] <= 0 {
				delete(capMap[u], v)
			}
			if capMap[v] == nil {
				capMap[v] = make(map[string]int64)
			}
			capMap[v][u] += bottleneck
		}

		maxFlow += bottleneck
		if opts.Verbose {
			fmt.Printf("flow: augmented %d along %v, running total %d\n", bottleneck, path, maxFlow)
		}
	}

	residual, err := buildResidualGraph(capMap, g)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds a shortest (fewest-edges) path from source to
// sink using only edges with strictly positive remaining capacity in
// capMap, and returns it along with its bottleneck capacity. Returns a
// nil path if sink is unreachable.
func bfsAugmentingPath(capMap map[string]map[string]int64, source, sink string) ([]string, int64) {
	parent := map[string]string{source: source}
	queue := []string{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if u == sink {
			break
		}

		for v, c := range capMap[u] {
			if c <= 0 {
				continue
			}
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			queue = append(queue, v)
		}
	}

	if _, reached := parent[sink]; !reached {
		return nil, 0
	}

	var path []string
	bottleneck := int64(-1)
	for v := sink; ; {
		path = append([]string{v}, path...)
		u := parent[v]
		if u == v {
			break
		}
		if c := capMap[u][v]; bottleneck == -1 || c < bottleneck {
			bottleneck = c
		}
		v = u
	}

	return path, bottleneck
}
