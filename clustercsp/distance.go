// File: distance.go — structural distance constraints.
package clustercsp

import (
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/symgraph"
)

// distanceConstraints forces every satisfying assignment to respect
// structural distance given the activated edges and clusterings: for
// every active-network edge and every pairing of its two NOEs' candidate
// clusters, the signatures clustered to that pairing may only both be
// assigned methyls that are close enough in structure — conditional on
// the edge being active and each NOE actually being clustered that way.
func (csp *CSP) distanceConstraints(active *symgraph.View, structure *model.Structure, p config.Params) {
	for _, edge := range active.Edges() {
		i, j := edge[0], edge[1]
		short := i.ShortRange || j.ShortRange

		for _, iCluster := range i.Clusters {
			for _, jCluster := range j.Clusters {
				if iCluster == jCluster {
					continue
				}

				var baseClause []int
				if v, ok := csp.ActivationVariables[i][j]; ok {
					baseClause = append(baseClause, -v)
				}
				if len(i.Clusters) > 1 {
					baseClause = append(baseClause, -csp.ClusteringVariables[i][iCluster])
				}
				if len(j.Clusters) > 1 {
					baseClause = append(baseClause, -csp.ClusteringVariables[j][jCluster])
				}

				csp.respectDistanceConstraint(iCluster, jCluster, structure, baseClause, p, short)
			}
		}
	}
}

// respectDistanceConstraint forces, for every methyl alpha could be
// assigned, that either baseClause is satisfied some other way, or beta
// is assigned a methyl close enough to it in structure. The applicable
// radius is SHORT_RADIUS for a short-range edge, else ADDED_RADIUS when
// either methyl was synthetically added, else the nominal RADIUS.
func (csp *CSP) respectDistanceConstraint(alpha, beta *model.Signature, structure *model.Structure, baseClause []int, p config.Params, short bool) {
	alphaTable := csp.AssignmentVariables[alpha]
	betaTable := csp.AssignmentVariables[beta]

	for alphaMethyl, alphaVar := range alphaTable {
		clause := make([]int, len(baseClause), len(baseClause)+1+len(betaTable))
		copy(clause, baseClause)
		clause = append(clause, -alphaVar)

		for betaMethyl, betaVar := range betaTable {
			if alphaMethyl == betaMethyl {
				continue
			}

			distance, ok := structure.Distance(alphaMethyl, betaMethyl)
			if !ok {
				continue
			}

			threshold := p.Radius
			switch {
			case short:
				threshold = p.ShortRadius
			case alphaMethyl.Added || betaMethyl.Added:
				threshold = p.AddedRadius
			}
			if distance < threshold {
				clause = append(clause, betaVar)
			}
		}

		csp.AddClause(clause)
	}
}
