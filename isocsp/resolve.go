// File: resolve.go — deriving a signature graph from a resolved
// symmetrization graph.
package isocsp

import (
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/symgraph"
)

// ResolveGraph derives a signature graph from living's connected
// components: every living 2-node component {i,j} contributes an edge
// between clusterOf(i) and clusterOf(j) (skipped when they resolved to
// the same signature, or when either has no clustering at all), and
// every geminal signature pair contributes a geminal edge.
func ResolveGraph(signatures []*model.Signature, living *symgraph.View, clusterOf func(*model.NOE) *model.Signature) (*Graph, error) {
	g := NewGraph(signatures)

	components, err := living.Components()
	if err != nil {
		return nil, err
	}

	for _, comp := range components {
		if len(comp) != 2 {
			continue
		}

		i, j := comp[0], comp[1]
		si, sj := clusterOf(i), clusterOf(j)
		if si == nil || sj == nil {
			continue
		}

		g.AddEdge(si, sj, i.ShortRange || j.ShortRange)
	}

	g.AddGeminalEdges()

	return g, nil
}
