// File: domain.go — per-signature assignment domain selection.
package clustercsp

import (
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
)

// assignmentDomain returns the set of methyls signature may be assigned
// to. FORCE_SV is checked first: if it is set and the signature already
// has a non-empty Options set, that narrower set is the domain outright.
// Otherwise FORCE_ASG is checked: if set and Asg is non-empty, that set is
// the domain. Failing both, the domain is every methyl whose color is
// compatible with the signature.
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
