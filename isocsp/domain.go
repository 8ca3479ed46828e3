// File: domain.go — per-signature assignment domain selection.
//
// Deliberately duplicated from clustercsp rather than shared: the two CSP
// builders are independent consumers of model/config/cnf with no
// dependency on each other, mirroring how the two vertex-injection passes
// they ground on (sat.py's ClusteringCSP and the isomorphism CSP it feeds)
// are independent call sites of the same small rule, not a shared helper.
package isocsp

import (
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
)

func assignmentDomain(sig *model.Signature, methyls []*model.Methyl, p config.Params) []*model.Methyl {
	if p.ForceSV && len(sig.Options) > 0 {
		return sig.Options
	}
	if p.ForceASG && len(sig.Asg) > 0 {
		return sig.Asg
	}

	domain := make([]*model.Methyl, 0, len(methyls))
	for _, m := range methyls {
		if sig.CompatibleColor(m) {
			domain = append(domain, m)
		}
	}

	return domain
}
