// File: noe.go — constructing NOEs from input rows and resolving their
// forced cluster/reciprocal label references.
package ingest

import (
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
)

// RawNOE holds an NOE row's parsed shifts together with its forced
// cluster and reciprocal references — given as labels — before they
// have been resolved against the rest of the batch. Label is this row's
// own identifier, used only so other rows' reciprocal references can
// name it; it is not retained on the resolved model.NOE.
type RawNOE struct {
	NOE *model.NOE

	Label            string
	ClusterLabels    []string
	ReciprocalLabels []string
}

// NewNOE parses a row of string fields into a RawNOE. The NOE's kind is
// inferred from which shifts are present: both c1 and h1 present means
// FourD, c1 alone means CCH, and no c1 (with or without h1) means HCH
// (c2 and h2 are always required). A row whose shifts place it on the diagonal of its
// experiment is rejected with ErrDiagonal rather than constructed.
func NewNOE(fields map[string]string) (*RawNOE, error) {
	c2, err := requireFloat(fields, "c2")
	if err != nil {
		return nil, err
	}
	h2, err := requireFloat(fields, "h2")
	if err != nil {
		return nil, err
	}

	c1, hasC1 := optionalFloat(fields, "c1")
	h1, hasH1 := optionalFloat(fields, "h1")

	var kind model.Kind
	switch {
	case hasC1 && hasH1:
		kind = model.FourD
	case hasC1:
		kind = model.CCH
	default:
		kind = model.HCH
	}

	intensity, _ := optionalFloat(fields, "intensity")

	n := &model.NOE{
		Type:       kind,
		C1:         c1,
		C2:         c2,
		H1:         h1,
		H2:         h2,
		Intensity:  intensity,
		ShortRange: optionalBool(fields, "short_range"),
	}

	if n.Diagonal() {
		return nil, ErrDiagonal
	}

	return &RawNOE{
		NOE:              n,
		Label:            fields["label"],
		ClusterLabels:    splitLabels(fields["cluster"]),
		ReciprocalLabels: splitLabels(fields["reciprocals"]),
	}, nil
}

// ResolveNOEs turns a batch of RawNOEs into model.NOEs. A row whose
// ClusterLabels is non-empty gets exactly those signatures (matched by
// label) as its Clusters, overriding the tolerance-based search; every
// other row falls back to NOE.SetClusters against p's tolerances.
// Reciprocals are resolved purely by label: a and b become each other's
// reciprocal whenever either row names the other's label in its
// reciprocals field, the forced channel `noes.py:set_reciprocals`
// implements — chemical-shift symmetry is a separate concern detected
// later, at symgraph-build time.
func ResolveNOEs(raws []*RawNOE, signatures []*model.Signature, p config.Params) []*model.NOE {
	noes := make([]*model.NOE, len(raws))
	for i, r := range raws {
		noes[i] = r.NOE
	}

	for _, r := range raws {
		if len(r.ClusterLabels) == 0 {
			r.NOE.SetClusters(signatures, p)
			continue
		}

		wanted := make(map[string]bool, len(r.ClusterLabels))
		for _, label := range r.ClusterLabels {
			wanted[label] = true
		}
		r.NOE.Clusters = r.NOE.Clusters[:0]
		for _, s := range signatures {
			if wanted[s.Label] {
				r.NOE.Clusters = append(r.NOE.Clusters, s)
			}
		}
	}

	for _, a := range raws {
		if a.Label == "" {
			continue
		}
		for _, b := range raws {
			if a == b || b.Label == "" {
				continue
			}
			if containsLabel(b.ReciprocalLabels, a.Label) || containsLabel(a.ReciprocalLabels, b.Label) {
				a.NOE.Reciprocals = append(a.NOE.Reciprocals, b.NOE)
			}
		}
	}

	return noes
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}

	return false
}
