// File: matching.go — bipartite maximum matching over a view.
package symgraph

import (
	"context"
	"errors"
	"fmt"

	"github.com/nmrassign/methylcsp/core"
	"github.com/nmrassign/methylcsp/flow"
	"github.com/nmrassign/methylcsp/model"
)

// ErrMatchingPrecondition is returned by MaxMatching when a component's
// maximum-cardinality matching does not saturate its smaller bipartite
// side — the precondition the clustering CSP's activation constraints
// depend on to encode "respect the matching" correctly.
var ErrMatchingPrecondition = errors.New("symgraph: component's maximum matching does not saturate its smaller side")

// ErrNotBipartite is returned by Bipartition when a component contains an
// odd cycle and cannot be 2-colored.
var ErrNotBipartite = errors.New("symgraph: component is not bipartite")

// Bipartition splits component into two sides via BFS 2-coloring, and
// returns (left, right) with left always the smaller (or equal) side, by
// convention.
func (v *View) Bipartition(component []*model.NOE) (left, right []*model.NOE, err error) {
	if len(component) == 0 {
		return nil, nil, nil
	}

	color := make(map[*model.NOE]int, len(component))
	var side0, side1 []*model.NOE

	queue := []*model.NOE{component[0]}
	color[component[0]] = 0
	side0 = append(side0, component[0])

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		neighbors, nerr := v.Neighbors(n)
		if nerr != nil {
			return nil, nil, nerr
		}

		for _, nb := range neighbors {
			if nbColor, ok := color[nb]; ok {
				if nbColor == color[n] {
					return nil, nil, ErrNotBipartite
				}
				continue
			}

			nbColor := 1 - color[n]
			color[nb] = nbColor
			if nbColor == 0 {
				side0 = append(side0, nb)
			} else {
				side1 = append(side1, nb)
			}
			queue = append(queue, nb)
		}
	}

	if len(side0) > len(side1) {
		return side1, side0, nil
	}

	return side0, side1, nil
}

// MaxMatching computes a maximum-cardinality matching of component via a
// bipartite reduction to max flow (unit-capacity source->left->right->sink
// network), and verifies the matching saturates the smaller side. A
// component whose maximum matching does not saturate its smaller side
// fails ErrMatchingPrecondition: the caller's "respect this matching"
// encoding assumes it does.
func (v *View) MaxMatching(ctx context.Context, component []*model.NOE) (map[*model.NOE]*model.NOE, error) {
	left, right, err := v.Bipartition(component)
	if err != nil {
		return nil, err
	}
	if len(left) == 0 {
		return map[*model.NOE]*model.NOE{}, nil
	}

	const sourceID, sinkID = "__source__", "__sink__"
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	if err := g.AddVertex(sourceID); err != nil {
		return nil, err
	}
	if err := g.AddVertex(sinkID); err != nil {
		return nil, err
	}

	idOfLeft := make(map[*model.NOE]string, len(left))
	leftOfID := make(map[string]*model.NOE, len(left))
	for i, n := range left {
		id := fmt.Sprintf("L%d", i)
		idOfLeft[n] = id
		leftOfID[id] = n
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(sourceID, id, 1); err != nil {
			return nil, err
		}
	}

	idOfRight := make(map[*model.NOE]string, len(right))
	rightOfID := make(map[string]*model.NOE, len(right))
	for i, n := range right {
		id := fmt.Sprintf("R%d", i)
		idOfRight[n] = id
		rightOfID[id] = n
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(id, sinkID, 1); err != nil {
			return nil, err
		}
	}

	for _, l := range left {
		neighbors, err := v.Neighbors(l)
		if err != nil {
			return nil, err
		}
		for _, r := range neighbors {
			rid, ok := idOfRight[r]
			if !ok {
				continue
			}
			if _, err := g.AddEdge(idOfLeft[l], rid, 1); err != nil {
				return nil, err
			}
		}
	}

	maxFlow, residual, err := flow.EdmondsKarp(ctx, g, sourceID, sinkID, flow.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if int(maxFlow) != len(left) {
		return nil, ErrMatchingPrecondition
	}

	matching := make(map[*model.NOE]*model.NOE, len(left))
	for rid, r := range rightOfID {
		edges, err := residual.Neighbors(rid)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if e.From != rid {
				continue
			}
			if l, ok := leftOfID[e.To]; ok {
				matching[l] = r
			}
		}
	}

	return matching, nil
}
