// File: csp.go — the clustering CSP: vertex injection, clustering,
// matching, distance, and geminal constraints over a CNF formula.
package clustercsp

import (
	"context"

	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/symgraph"
)

// CSP is a clustering constraint-satisfaction formula: given a set of
// signatures, an active NOE network, and a structure, it encodes which
// combinations of signature-to-methyl assignments and NOE-to-signature
// clusterings are jointly consistent with color compatibility, a maximum
// matching of each network component, structural distance, and geminal
// pairing.
type CSP struct {
	*cnf.Formula

	// AssignmentVariables[sig][m] is the variable for "sig is assigned m".
	AssignmentVariables map[*model.Signature]map[*model.Methyl]int

	// ClusteringVariables[noe][sig] is the variable for "noe clusters to
	// sig". An NOE with only one possible cluster has no entry here: its
	// clustering cannot vary.
	ClusteringVariables map[*model.NOE]map[*model.Signature]int

	// ActivationVariables[a][b] is the variable for "the edge between a
	// and b is truly active". An edge that is its own connected
	// component (both endpoints degree 1) has no entry: it is always
	// active and needs no variable.
	ActivationVariables map[*model.NOE]map[*model.NOE]int
}

// Build constructs a CSP over signatures, the active subgraph of network,
// and structure, following the reference construction order: inject
// assignment variables, then clustering variables, then activation
// variables, then the matching/distance/geminal constraints that tie them
// together.
func Build(ctx context.Context, signatures []*model.Signature, network *symgraph.Graph, structure *model.Structure, p config.Params) (*CSP, error) {
	active, err := network.ActiveGraph()
	if err != nil {
		return nil, err
	}

	csp := &CSP{
		Formula:             cnf.NewFormula(),
		AssignmentVariables: make(map[*model.Signature]map[*model.Methyl]int, len(signatures)),
		ClusteringVariables: make(map[*model.NOE]map[*model.Signature]int),
		ActivationVariables: make(map[*model.NOE]map[*model.NOE]int),
	}

	csp.injectVertices(signatures, structure, p)
	csp.createClusteringVariables(active)
	if err := csp.createActivationVariables(active); err != nil {
		return nil, err
	}
	if err := csp.respectMatching(ctx, active); err != nil {
		return nil, err
	}
	csp.distanceConstraints(active, structure, p)
	csp.geminalConstraints(signatures)

	return csp, nil
}
