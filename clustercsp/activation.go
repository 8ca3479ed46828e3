// File: activation.go — activation-variable creation.
package clustercsp

import (
	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/symgraph"
)

// createActivationVariables creates a variable for the true activity of
// every edge in the active network, except an edge that is its own
// connected component (both endpoints degree 1): such an edge is always
// active by construction and needs no variable to say so.
func (csp *CSP) createActivationVariables(active *symgraph.View) error {
	for _, edge := range active.Edges() {
		i, j := edge[0], edge[1]

		di, err := active.Degree(i)
		if err != nil {
			return err
		}
		dj, err := active.Degree(j)
		if err != nil {
			return err
		}
		if di == 1 && dj == 1 {
			continue
		}

		v := csp.NextVariable()
		csp.VariableMeaning[v] = cnf.Act{A: i, B: j}

		if csp.ActivationVariables[i] == nil {
			csp.ActivationVariables[i] = make(map[*model.NOE]int)
		}
		if csp.ActivationVariables[j] == nil {
			csp.ActivationVariables[j] = make(map[*model.NOE]int)
		}
		csp.ActivationVariables[i][j] = v
		csp.ActivationVariables[j][i] = v
	}

	return nil
}
