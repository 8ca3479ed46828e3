// File: noe.go — NOE peaks and their symmetry/clustering relationships.
package model

import (
	"math"

	"github.com/nmrassign/methylcsp/config"
)

// Kind distinguishes the three NOE peak shapes this resolver ingests,
// determined by which chemical shifts a row carries.
type Kind int

const (
	// CCH carries two carbon shifts and one hydrogen shift.
	CCH Kind = iota
	// HCH carries two hydrogen shifts and one carbon shift.
	HCH
	// FourD carries two full (carbon, hydrogen) shift pairs.
	FourD
)

func (k Kind) String() string {
	switch k {
	case CCH:
		return "CCH"
	case HCH:
		return "HCH"
	case FourD:
		return "4D"
	default:
		return "unknown"
	}
}

// NOE is one nuclear Overhauser effect peak: spatial evidence that two
// methyl groups are close in the structure, expressed through the
// chemical shifts of the signatures it might connect. C2/H2 are only
// meaningful for Kind values that carry two shifts of that axis (see Kind).
type NOE struct {
	Type Kind

	C1, C2 float64
	H1, H2 float64

	Intensity  float64
	ShortRange bool

	// Clusters holds the signatures this NOE could plausibly be clustered
	// against: either forced by an input row's cluster labels, or, absent
	// those, filtered by chemical-shift closeness during ingest.
	Clusters []*Signature

	// Reciprocals holds other NOEs forced to be this one's reciprocal
	// pairing by an input row's reciprocals labels. Coordinate-symmetry
	// detection is a separate, graph-build-time concern (symgraph.New's
	// findSymmetries path); this field never derives from it.
	Reciprocals []*NOE
}

// Symmetric reports whether n and other could be the two reciprocal halves
// of the same NOE pair, by comparing n's shifts against other's
// cross-shifts within the tolerances in p. HCH deliberately does not
// compare a carbon shift: an HCH row only carries one.
func (n *NOE) Symmetric(other *NOE, p config.Params) bool {
	switch n.Type {
	case CCH:
		return math.Abs(n.C1-other.C2) < p.SymCTol && math.Abs(n.C2-other.C1) < p.SymCTol
	case HCH:
		return math.Abs(n.H1-other.H2) < p.SymHTol && math.Abs(n.H2-other.H1) < p.SymHTol
	case FourD:
		return math.Abs(n.H1-other.H2) < p.SymHTol && math.Abs(n.H2-other.H1) < p.SymHTol &&
			math.Abs(n.C1-other.C2) < p.SymCTol && math.Abs(n.C2-other.C1) < p.SymCTol
	default:
		return false
	}
}

// Diagonal reports whether n sits on the diagonal of its experiment — the
// two halves of the shift pair it carries refer to the same nucleus — and
// should be discarded rather than treated as spatial evidence.
func (n *NOE) Diagonal() bool {
	switch n.Type {
	case CCH:
		return math.Abs(n.C1-n.C2) < 0.1
	case HCH:
		return math.Abs(n.H1-n.H2) < 0.01
	case FourD:
		return math.Abs(n.H1-n.H2) < 0.01 && math.Abs(n.C1-n.C2) < 0.1
	default:
		return false
	}
}

// SetClusters filters signatures down to those whose chemical shifts are
// close enough to n's to be a plausible clustering, within p's clustering
// tolerances, and records them on n.Clusters.
func (n *NOE) SetClusters(signatures []*Signature, p config.Params) {
	n.Clusters = n.Clusters[:0]
	for _, s := range signatures {
		if n.closeTo(s, p) {
			n.Clusters = append(n.Clusters, s)
		}
	}
}

// closeTo reports whether s's shifts are within clustering tolerance of
// n's receiver coordinates (C2, H2) — the same test for every Kind,
// since clustering is always judged against the receiving nucleus, not
// the donor.
func (n *NOE) closeTo(s *Signature, p config.Params) bool {
	return math.Abs(n.C2-s.Carbon) < p.ClsCTol && math.Abs(n.H2-s.Hydrogen) < p.ClsHTol
}
