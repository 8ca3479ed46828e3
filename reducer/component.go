// File: component.go — per-component SAT-guided edge removal.
package reducer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nmrassign/methylcsp/clustercsp"
	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/satsolver"
	"github.com/nmrassign/methylcsp/symgraph"
)

// Solver is the solving step Reduce and CleanComponents drive.
// satsolver.Solve satisfies this signature directly; tests substitute a
// stub so the reduction loop can be exercised without an external solver
// process.
type Solver func(context.Context, *cnf.Formula) (satsolver.Model, error)

// componentEdges returns the edges of view that lie entirely within
// component.
func componentEdges(view *symgraph.View, component []*model.NOE) [][2]*model.NOE {
	member := make(map[*model.NOE]bool, len(component))
	for _, n := range component {
		member[n] = true
	}

	var edges [][2]*model.NOE
	for _, e := range view.Edges() {
		if member[e[0]] && member[e[1]] {
			edges = append(edges, e)
		}
	}

	return edges
}

// testComponent iterates every maximum-cardinality matching of component,
// activating each in turn and checking whether the clustering CSP remains
// satisfiable with it active. It returns every edge that was never part
// of a satisfiability-preserving matching — safe to kill outright.
func testComponent(ctx context.Context, component []*model.NOE, network *symgraph.Graph, edges [][2]*model.NOE, signatures []*model.Signature, structure *model.Structure, p config.Params, solve Solver, logger *zap.Logger) ([][2]*model.NOE, error) {
	if len(component) > p.MaxEnumeratedComponentSize {
		return nil, fmt.Errorf("%w: component has %d nodes", ErrComponentTooLarge, len(component))
	}

	unseen := make(map[[2]*model.NOE]bool, len(edges))
	for _, e := range edges {
		unseen[e] = true
	}

	for _, matching := range maxMatchings(edges) {
		for _, e := range matching {
			if err := network.Activate(e[0], e[1]); err != nil {
				return nil, err
			}
		}

		sat, err := checkSAT(ctx, network, signatures, structure, p, solve)
		if err != nil {
			return nil, err
		}
		if sat {
			for _, e := range matching {
				delete(unseen, e)
			}
		}

		for _, e := range matching {
			if err := network.Deactivate(e[0], e[1]); err != nil {
				return nil, err
			}
		}
	}

	out := make([][2]*model.NOE, 0, len(unseen))
	for e := range unseen {
		out = append(out, e)
	}

	logger.Info("tested symmetrization component",
		zap.Int("nodes", len(component)),
		zap.Int("edges", len(edges)),
		zap.Int("removable", len(out)),
	)

	return out, nil
}

// checkSAT builds a fresh clustering CSP over network's current active
// subgraph and reports whether it is satisfiable. A solver timeout is
// treated as unsatisfiable, per the timeout-as-UNSAT contract satsolver
// documents.
func checkSAT(ctx context.Context, network *symgraph.Graph, signatures []*model.Signature, structure *model.Structure, p config.Params, solve Solver) (bool, error) {
	csp, err := clustercsp.Build(ctx, signatures, network, structure, p)
	if err != nil {
		return false, err
	}

	result, err := solve(ctx, csp.Formula)
	if err != nil {
		if errors.Is(err, satsolver.ErrTimeout) {
			return false, nil
		}
		return false, err
	}

	return len(result) > 0, nil
}
