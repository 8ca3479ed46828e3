// File: clustering.go — clustering-variable creation.
package clustercsp

import (
	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/symgraph"
)

// createClusteringVariables creates a clustering variable for every
// (NOE, candidate signature) pair among the active network's NOEs, and
// constrains each NOE to exactly one clustering. An NOE with only one
// candidate cluster gets no variable at all: its clustering cannot vary,
// so nothing needs to be decided.
func (csp *CSP) createClusteringVariables(active *symgraph.View) {
	for _, noe := range active.NOEs() {
		if len(noe.Clusters) <= 1 {
			continue
		}

		table := make(map[*model.Signature]int, len(noe.Clusters))
		lits := make([]int, 0, len(noe.Clusters))

		for _, cluster := range noe.Clusters {
			v := csp.NextVariable()
			csp.VariableMeaning[v] = cnf.Cst{NOE: noe, Signature: cluster}
			table[cluster] = v
			lits = append(lits, v)
		}

		csp.ClusteringVariables[noe] = table
		csp.ExactlyOne(lits)
	}
}
