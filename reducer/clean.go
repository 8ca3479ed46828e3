// File: clean.go — final per-edge activation check over what survived
// Reduce's main pass.
package reducer

import (
	"context"
	"errors"

	"github.com/nmrassign/methylcsp/clustercsp"
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/satsolver"
	"github.com/nmrassign/methylcsp/symgraph"
)

// CleanComponents builds a single clustering CSP over network's current
// active subgraph, then for every edge inside an active component of at
// least 3 vertices, forces that edge's activation variable true and
// re-solves. An edge whose forced activation makes the formula
// unsatisfiable is killed outright: no matching compatible with the rest
// of the active graph can ever have used it, a check Reduce's
// matching-by-matching pass does not make on its own.
func CleanComponents(ctx context.Context, network *symgraph.Graph, signatures []*model.Signature, structure *model.Structure, p config.Params, solve Solver) error {
	active, err := network.ActiveGraph()
	if err != nil {
		return err
	}
	components, err := active.Components()
	if err != nil {
		return err
	}

	csp, err := clustercsp.Build(ctx, signatures, network, structure, p)
	if err != nil {
		return err
	}

	seenVar := make(map[int]bool)

	for _, component := range components {
		if len(component) < 3 {
			continue
		}

		for _, a := range component {
			for b, v := range csp.ActivationVariables[a] {
				if seenVar[v] {
					continue
				}
				seenVar[v] = true

				csp.AddAuxClause([]int{v})
				result, err := solve(ctx, csp.Formula)
				csp.Flush()
				if err != nil && !errors.Is(err, satsolver.ErrTimeout) {
					return err
				}

				if len(result) == 0 {
					if err := network.Kill(a, b); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}
