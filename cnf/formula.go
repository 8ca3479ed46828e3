// File: formula.go — CNF formula construction and the at-most-one encoding.
package cnf

// Formula accumulates a propositional formula in conjunctive normal form:
// a variable count, a clause count, a list of permanent ("base") clauses
// and a list of temporary ("aux") clauses that can be discarded in bulk
// with Flush, and a sidecar mapping from variable number to its Variable
// meaning.
//
// Clauses and variable numbers use the DIMACS convention: variables are
// positive integers starting at 1, and a negative integer denotes the
// negation of that variable.
type Formula struct {
	NVars    int
	NClauses int

	BaseClauses [][]int
	AuxClauses  [][]int

	VariableMeaning map[int]Variable
}

// NewFormula returns an empty Formula.
func NewFormula() *Formula {
	return &Formula{VariableMeaning: make(map[int]Variable)}
}

// NextVariable allocates and returns a fresh variable number.
func (f *Formula) NextVariable() int {
	f.NVars++
	return f.NVars
}

// AddClause appends a permanent disjunction of lits to the formula.
func (f *Formula) AddClause(lits []int) {
	f.NClauses++
	f.BaseClauses = append(f.BaseClauses, lits)
}

// AddAuxClause appends a temporary disjunction of lits, removable in bulk
// by a later call to Flush.
func (f *Formula) AddAuxClause(lits []int) {
	f.NClauses++
	f.AuxClauses = append(f.AuxClauses, lits)
}

// Flush discards every aux clause added since the last Flush.
func (f *Formula) Flush() {
	f.NClauses -= len(f.AuxClauses)
	f.AuxClauses = nil
}

// AtMostOne constrains lits so that at most one is true in any satisfying
// assignment. Three or fewer literals use the naive pairwise encoding;
// four or more use the commander encoding, partitioning lits into groups
// of three, giving each group a commander variable that both implies and
// is implied by the group's disjunction plus a pairwise at-most-one inside
// the group, then recursing on the commanders.
func (f *Formula) AtMostOne(lits []int) {
	if len(lits) < 4 {
		f.naiveAtMostOne(lits)
		return
	}

	var commanders []int
	for idx := 0; idx < len(lits); idx += 3 {
		end := idx + 3
		if end > len(lits) {
			end = len(lits)
		}
		group := lits[idx:end]

		cmdr := f.NextVariable()
		f.VariableMeaning[cmdr] = Cmd{}
		commanders = append(commanders, cmdr)

		clause := make([]int, 0, len(group)+1)
		clause = append(clause, -cmdr)
		clause = append(clause, group...)
		f.AddClause(clause)

		for _, l := range group {
			f.AddClause([]int{cmdr, -l})
		}
		f.naiveAtMostOne(group)
	}

	f.AtMostOne(commanders)
}

// naiveAtMostOne pairwise-forbids every two literals from both being true.
func (f *Formula) naiveAtMostOne(lits []int) {
	negated := make([]int, len(lits))
	for i, l := range lits {
		negated[i] = -l
	}
	for i := 0; i < len(negated); i++ {
		for j := i + 1; j < len(negated); j++ {
			f.AddClause([]int{negated[i], negated[j]})
		}
	}
}

// ExactlyOne constrains lits so that exactly one is true: AtMostOne plus a
// single disjunctive clause forcing at least one to hold.
func (f *Formula) ExactlyOne(lits []int) {
	f.AtMostOne(lits)
	atLeastOne := make([]int, len(lits))
	copy(atLeastOne, lits)
	f.AddClause(atLeastOne)
}
