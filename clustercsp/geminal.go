// File: geminal.go — geminal-pair constraints.
package clustercsp

import "github.com/nmrassign/methylcsp/model"

// geminalConstraints forces every satisfying assignment to keep geminal
// signature pairs consistent: whichever methyl one of the pair is
// assigned, its partner must be assigned to one of that methyl's
// geminal partners.
func (csp *CSP) geminalConstraints(signatures []*model.Signature) {
	for _, i := range signatures {
		j := i.Geminal
		if j == nil {
			continue
		}

		iTable := csp.AssignmentVariables[i]
		jTable := csp.AssignmentVariables[j]

		for iMethyl, iVar := range iTable {
			clause := []int{-iVar}

			for jMethyl, jVar := range jTable {
				if iMethyl.Geminal(jMethyl) {
					clause = append(clause, jVar)
				}
			}

			csp.AddClause(clause)
		}
	}
}
