// File: distance.go — isomorphism distance and optional edge-cost
// constraints.
package isocsp

import (
	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
)

// edgeVarKey identifies one edg[(i,j),(mi,mj)] weighted-sampling variable.
type edgeVarKey struct {
	A, B   *model.Signature
	MA, MB *model.Methyl
}

// distanceConstraints forces, for each signature-graph edge (i,j) and
// each methyl i could be assigned, that j is assigned a methyl close
// enough in structure — restricted to geminal partners of i's methyl
// when the edge itself is geminal. When edgeVars is set, every admitted
// (mi, mj) pair additionally gets an edg variable biconditional on both
// assignments holding, with its structural distance recorded as a cost
// for weighted sampling.
func (csp *CSP) distanceConstraints(graph *Graph, structure *model.Structure, p config.Params, edgeVars bool) {
	for _, edge := range graph.Edges() {
		i, j := edge.A, edge.B
		iTable := csp.AssignmentVariables[i]
		jTable := csp.AssignmentVariables[j]

		for iMethyl, iVar := range iTable {
			clause := []int{-iVar}

			for jMethyl, jVar := range jTable {
				if iMethyl == jMethyl {
					continue
				}
				if edge.Geminal && !iMethyl.Geminal(jMethyl) {
					continue
				}

				distance, ok := structure.Distance(iMethyl, jMethyl)
				if !ok {
					continue
				}

				threshold := p.Radius
				switch {
				case edge.Short:
					threshold = p.ShortRadius
				case iMethyl.Added || jMethyl.Added:
					threshold = p.AddedRadius
				}
				if distance >= threshold {
					continue
				}

				clause = append(clause, jVar)

				if edgeVars {
					csp.addEdgeVariable(i, j, iMethyl, jMethyl, iVar, jVar, distance)
				}
			}

			csp.AddClause(clause)
		}
	}
}

func (csp *CSP) addEdgeVariable(i, j *model.Signature, mi, mj *model.Methyl, iVar, jVar int, distance float64) {
	v := csp.NextVariable()
	csp.VariableMeaning[v] = cnf.Edg{A: mi, B: mj}
	csp.VariableCost[v] = distance
	csp.EdgeVariables[edgeVarKey{A: i, B: j, MA: mi, MB: mj}] = v

	// edg -> asg[i,mi], edg -> asg[j,mj], (asg[i,mi] & asg[j,mj]) -> edg.
	csp.AddClause([]int{-v, iVar})
	csp.AddClause([]int{-v, jVar})
	csp.AddClause([]int{v, -iVar, -jVar})
}
