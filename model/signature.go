// File: signature.go — HMQC peak signatures and their candidate methyls.
package model

// Signature is one HMQC peak: a labeled (carbon, hydrogen) chemical-shift
// pair observed for a methyl group of one or more compatible colors. Asg
// holds methyls this signature is already known to be assigned to (from
// prior experimental work); Options holds a narrower, already-resolved set
// of candidate methyls when one is available. Geminal, when non-nil, points
// to the signature of this residue's other branch.
type Signature struct {
	Label    string
	Carbon   float64
	Hydrogen float64
	Colors   map[string]bool

	Asg     []*Methyl
	Options []*Methyl
	Geminal *Signature
}

// NewSignature constructs a Signature with an empty Asg/Options/Geminal,
// ready for ingest to populate from input rows.
func NewSignature(label string, carbon, hydrogen float64, colors []string) *Signature {
	colorSet := make(map[string]bool, len(colors))
	for _, c := range colors {
		colorSet[c] = true
	}

	return &Signature{Label: label, Carbon: carbon, Hydrogen: hydrogen, Colors: colorSet}
}

// IsGeminal reports whether this signature and other are marked as the two
// branches of the same residue.
func (s *Signature) IsGeminal(other *Signature) bool {
	return s.Geminal == other
}

// Nailed reports whether every methyl in Options belongs to the same
// residue (sequence position): the signature's assignment is narrowed to a
// single residue even if which branch remains ambiguous.
func (s *Signature) Nailed() bool {
	if len(s.Options) == 0 {
		return false
	}

	seqID := s.Options[0].SeqID
	for _, m := range s.Options[1:] {
		if m.SeqID != seqID {
			return false
		}
	}

	return true
}

// CompatibleColor reports whether m's color is among the colors this
// signature may be assigned to.
func (s *Signature) CompatibleColor(m *Methyl) bool {
	return s.Colors[m.Color]
}

func (s *Signature) String() string { return "signature:" + s.Label }
