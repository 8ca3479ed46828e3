// File: matching.go — the "respect the maximum matching" constraint.
package clustercsp

import (
	"context"

	"github.com/nmrassign/methylcsp/symgraph"
)

// respectMatching forces every satisfying assignment to activate a
// maximum-cardinality matching of each active-network component with 3 or
// more vertices (a 2-vertex component is respected automatically, since
// its single edge has no variable at all). Within each qualifying
// component's bipartition, exactly one incident edge on the smaller side
// must be active, and at most one incident edge on the larger side may
// be active — which activates a maximum matching exactly when the
// matching saturates the smaller side, the precondition MaxMatching
// checks before returning.
func (csp *CSP) respectMatching(ctx context.Context, active *symgraph.View) error {
	components, err := active.Components()
	if err != nil {
		return err
	}

	for _, comp := range components {
		if len(comp) < 3 {
			continue
		}

		if _, err := active.MaxMatching(ctx, comp); err != nil {
			return err
		}

		left, right, err := active.Bipartition(comp)
		if err != nil {
			return err
		}

		for _, l := range left {
			lits := litsOf(csp.ActivationVariables[l])
			csp.ExactlyOne(lits)
		}
		for _, r := range right {
			lits := litsOf(csp.ActivationVariables[r])
			csp.AtMostOne(lits)
		}
	}

	return nil
}
