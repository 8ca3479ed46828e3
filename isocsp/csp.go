// File: csp.go — the isomorphism CSP: vertex injection and distance
// constraints over a signature graph.
package isocsp

import (
	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
)

// CSP is an isomorphism constraint-satisfaction formula: given a
// signature graph and a structure, it encodes which signature-to-methyl
// assignments keep every graph edge's two endpoints structurally close
// (or, for geminal edges, geminal partners of one another).
type CSP struct {
	*cnf.Formula

	// AssignmentVariables[sig][m] is the variable for "sig is assigned m".
	AssignmentVariables map[*model.Signature]map[*model.Methyl]int

	// EdgeVariables holds the optional edg[(i,j),(mi,mj)] variables used
	// for weighted structural sampling, populated only when Build is
	// called with edgeVars set.
	EdgeVariables map[edgeVarKey]int

	// VariableCost records the structural distance associated with each
	// edg variable, consumed by a sampler's weight file.
	VariableCost map[int]float64
}

// Build constructs a CSP over graph's vertices and edges against
// structure, following the reference construction order: inject
// assignment variables, then distance constraints. When edgeVars is
// true, every admitted methyl pair also gets an edg variable and a
// recorded structural cost for weighted sampling.
func Build(graph *Graph, structure *model.Structure, p config.Params, edgeVars bool) *CSP {
	csp := &CSP{
		Formula:             cnf.NewFormula(),
		AssignmentVariables: make(map[*model.Signature]map[*model.Methyl]int, len(graph.Vertices())),
		EdgeVariables:       make(map[edgeVarKey]int),
		VariableCost:        make(map[int]float64),
	}

	csp.injectVertices(graph.Vertices(), structure, p)
	csp.distanceConstraints(graph, structure, p, edgeVars)

	return csp
}
