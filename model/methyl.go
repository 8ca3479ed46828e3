// File: methyl.go — methyl group identity and geminal pairing.
package model

import "fmt"

// Methyl identifies a single methyl group in a protein structure: its amino
// acid color (residue type, e.g. "L", "V", "A", "I", "M"), its sequence
// position, and — for the two-branched colors L and V — which of the two
// branches ("1" or "2") it is. Added marks a methyl that was synthesized
// into the structure rather than resolved from a real coordinate; it
// relaxes which distance threshold applies to pairs touching it.
type Methyl struct {
	Color string
	SeqID int
	Order string // empty unless Color is "L" or "V"
	Added bool
}

// NewMethyl constructs a Methyl, clearing Order for any color other than L
// or V (order only distinguishes branches on residues with two methyls).
func NewMethyl(color string, seqID int, order string, added bool) *Methyl {
	if color != "L" && color != "V" {
		order = ""
	}

	return &Methyl{Color: color, SeqID: seqID, Order: order, Added: added}
}

// Label returns this methyl's canonical identifier, e.g. "L42.1" or "A7".
func (m *Methyl) Label() string {
	if m.Order != "" {
		return fmt.Sprintf("%s%d.%s", m.Color, m.SeqID, m.Order)
	}

	return fmt.Sprintf("%s%d", m.Color, m.SeqID)
}

// Geminal reports whether m and other are the two branches of the same
// two-methyl residue: same sequence position, different order.
func (m *Methyl) Geminal(other *Methyl) bool {
	return m.SeqID == other.SeqID && m.Order != other.Order
}

func (m *Methyl) String() string { return "methyl:" + m.Label() }
