// File: correlate.go — joint-frequency-driven clause injection between
// pairs of signature assignments.
package marginal

import (
	"sort"

	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/isocsp"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/satsolver"
)

// seqIDKey identifies the auxiliary variable standing for "signature is
// assigned some methyl carrying this sequence position".
type seqIDKey struct {
	Signature *model.Signature
	SeqID     int
}

// CorrelateAssignments compares, for every pair of non-geminal,
// non-nailed signatures and every pair of distinct sequence positions
// they could be assigned to, the observed joint assignment frequency
// against what independence would predict. A joint frequency ten times
// higher than independence predicts is taken as near-certain correlation
// and encoded as a biconditional between seqid-level auxiliary
// variables; a joint frequency ten times lower is taken as near-certain
// exclusion and encoded directly as pairwise mutual-exclusion clauses.
// seqIDVars caches the auxiliary variables across repeated calls against
// the same csp, so a later call's biconditional clauses tie into the
// same variable an earlier call already constrained.
func CorrelateAssignments(csp *isocsp.CSP, marginals Marginals, samples []satsolver.Model, seqIDVars map[seqIDKey]int) {
	signatures := make([]*model.Signature, 0, len(csp.AssignmentVariables))
	for sig := range csp.AssignmentVariables {
		signatures = append(signatures, sig)
	}
	sort.Slice(signatures, func(i, j int) bool { return signatures[i].Label < signatures[j].Label })

	for i := 0; i < len(signatures); i++ {
		s1 := signatures[i]
		if s1.Geminal != nil || s1.Nailed() {
			continue
		}

		for j := i + 1; j < len(signatures); j++ {
			s2 := signatures[j]
			if s2.Geminal != nil || s2.Nailed() {
				continue
			}

			for _, q1 := range seqIDsOf(csp.AssignmentVariables[s1]) {
				for _, q2 := range seqIDsOf(csp.AssignmentVariables[s2]) {
					if q1 == q2 {
						continue
					}

					pIndep := marginals[s1][q1] * marginals[s2][q2]
					pObs := jointFrequency(samples, s1, q1, s2, q2)

					switch {
					case pObs > 10*pIndep:
						forceSeqIDEquivalence(csp, seqIDVars, s1, q1, s2, q2)
					case 10*pObs < pIndep:
						forceSeqIDExclusion(csp, s1, q1, s2, q2)
					}
				}
			}
		}
	}
}

// seqIDsOf returns the distinct sequence positions among a signature's
// candidate methyls, in ascending order.
func seqIDsOf(table map[*model.Methyl]int) []int {
	seen := make(map[int]bool, len(table))
	for m := range table {
		seen[m.SeqID] = true
	}
	out := make([]int, 0, len(seen))
	for seqID := range seen {
		out = append(out, seqID)
	}
	sort.Ints(out)

	return out
}

// jointFrequency returns the fraction of samples in which s1 was
// assigned a methyl with sequence position q1 and s2 was simultaneously
// assigned a methyl with sequence position q2.
func jointFrequency(samples []satsolver.Model, s1 *model.Signature, q1 int, s2 *model.Signature, q2 int) float64 {
	if len(samples) == 0 {
		return 0
	}

	count := 0
	for _, m := range samples {
		has1, has2 := false, false
		for _, v := range m {
			asg, ok := v.(cnf.Asg)
			if !ok {
				continue
			}
			if asg.Signature == s1 && asg.Methyl.SeqID == q1 {
				has1 = true
			}
			if asg.Signature == s2 && asg.Methyl.SeqID == q2 {
				has2 = true
			}
		}
		if has1 && has2 {
			count++
		}
	}

	return float64(count) / float64(len(samples))
}

// seqIDVariable returns the auxiliary variable standing for "sig is
// assigned some methyl with sequence position seqID", creating it (and
// its biconditional clauses against every matching assignment variable)
// the first time it is requested for this (sig, seqID) pair.
func seqIDVariable(csp *isocsp.CSP, cache map[seqIDKey]int, sig *model.Signature, seqID int) int {
	key := seqIDKey{Signature: sig, SeqID: seqID}
	if v, ok := cache[key]; ok {
		return v
	}

	lits := literalsForSeqID(csp.AssignmentVariables[sig], seqID)

	v := csp.NextVariable()
	csp.VariableMeaning[v] = cnf.Cmd{}
	cache[key] = v

	for _, lit := range lits {
		csp.AddClause([]int{-lit, v})
	}
	forward := append([]int{-v}, lits...)
	csp.AddClause(forward)

	return v
}

// literalsForSeqID returns the assignment-variable literals in table
// whose methyl carries sequence position seqID.
func literalsForSeqID(table map[*model.Methyl]int, seqID int) []int {
	var lits []int
	for m, v := range table {
		if m.SeqID == seqID {
			lits = append(lits, v)
		}
	}

	return lits
}

func forceSeqIDEquivalence(csp *isocsp.CSP, cache map[seqIDKey]int, s1 *model.Signature, q1 int, s2 *model.Signature, q2 int) {
	v1 := seqIDVariable(csp, cache, s1, q1)
	v2 := seqIDVariable(csp, cache, s2, q2)

	csp.AddClause([]int{-v1, v2})
	csp.AddClause([]int{v1, -v2})
}

func forceSeqIDExclusion(csp *isocsp.CSP, s1 *model.Signature, q1 int, s2 *model.Signature, q2 int) {
	for m1, v1 := range csp.AssignmentVariables[s1] {
		if m1.SeqID != q1 {
			continue
		}
		for m2, v2 := range csp.AssignmentVariables[s2] {
			if m2.SeqID != q2 {
				continue
			}
			csp.AddClause([]int{-v1, -v2})
		}
	}
}
