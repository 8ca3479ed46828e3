// File: inject.go — assignment-variable creation and injectivity.
package clustercsp

import (
	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
)

// injectVertices creates an assignment variable for every (signature,
// methyl) pair in the signature's domain, constrains each signature to
// exactly one assigned methyl, and constrains each methyl to no more than
// one assigned signature — making any satisfying assignment an injective
// function from signatures into methyls.
func (csp *CSP) injectVertices(signatures []*model.Signature, structure *model.Structure, p config.Params) {
	methyls := structure.Methyls()
	methylDomains := make(map[*model.Methyl][]*model.Signature)

	for _, sig := range signatures {
		domain := assignmentDomain(sig, methyls, p)
		table := make(map[*model.Methyl]int, len(domain))
		lits := make([]int, 0, len(domain))

		for _, m := range domain {
			v := csp.NextVariable()
			table[m] = v
			csp.VariableMeaning[v] = cnf.Asg{Signature: sig, Methyl: m}
			lits = append(lits, v)
			methylDomains[m] = append(methylDomains[m], sig)
		}

		csp.AssignmentVariables[sig] = table
		csp.ExactlyOne(lits)
	}

	for _, m := range methyls {
		sigs := methylDomains[m]
		lits := make([]int, 0, len(sigs))
		for _, sig := range sigs {
			lits = append(lits, csp.AssignmentVariables[sig][m])
		}
		csp.AtMostOne(lits)
	}
}
