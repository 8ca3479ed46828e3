// File: gibbs.go — the marginalize/correlate/nail loop that tightens an
// isomorphism CSP before final enumeration.
package marginal

import (
	"context"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/enumerator"
	"github.com/nmrassign/methylcsp/isocsp"
	"github.com/nmrassign/methylcsp/model"
)

// GibbsReduce builds an isomorphism CSP over graph and structure, then
// repeatedly marginalizes and correlates against it, nailing any
// unnailed signature whose dominant sequence position has a marginal
// above 0.9, until a full pass nails nothing new. It then hands the
// tightened formula to enumerator.Enumerate for the final support-set
// computation.
//
// Signatures already nailed — every candidate methyl sharing one
// sequence position — are left untouched by the nailing step, matching
// Signature.Nailed's definition of that state.
func GibbsReduce(ctx context.Context, graph *isocsp.Graph, structure *model.Structure, p config.Params, sample Sampler, solve enumerator.Solver, exponent float64, n int, rng *rand.Rand, logger *zap.Logger) (map[*model.Signature]map[*model.Methyl]bool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	csp := isocsp.Build(graph, structure, p, true)

	unnailed := make(map[*model.Signature]bool)
	for sig := range csp.AssignmentVariables {
		if !sig.Nailed() {
			unnailed[sig] = true
		}
	}

	seqIDVars := make(map[seqIDKey]int)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		marginals, samples, err := Marginalize(ctx, sample, csp, exponent, n)
		if err != nil {
			return nil, err
		}

		CorrelateAssignments(csp, marginals, samples, seqIDVars)

		nailedAny := false
		for _, sig := range sortedSignatures(unnailed) {
			seqID, frac := dominantSeqID(marginals[sig])
			if frac <= 0.9 {
				continue
			}

			lits := literalsForSeqID(csp.AssignmentVariables[sig], seqID)
			csp.AddClause(lits)
			delete(unnailed, sig)
			nailedAny = true

			logger.Info("nailed signature via marginal dominance",
				zap.String("signature", sig.Label),
				zap.Int("seqid", seqID),
				zap.Float64("marginal", frac),
			)
		}

		if !nailedAny {
			break
		}
	}

	return enumerator.Enumerate(ctx, solve, csp.Formula, csp.AssignmentVariables, rng, logger)
}

// dominantSeqID returns the sequence position with the highest marginal
// in m and its marginal value, breaking ties by the lowest sequence
// position for determinism.
func dominantSeqID(m map[int]float64) (int, float64) {
	seqIDs := make([]int, 0, len(m))
	for seqID := range m {
		seqIDs = append(seqIDs, seqID)
	}
	sort.Ints(seqIDs)

	bestSeqID, bestFrac := 0, -1.0
	for _, seqID := range seqIDs {
		if m[seqID] > bestFrac {
			bestSeqID, bestFrac = seqID, m[seqID]
		}
	}

	return bestSeqID, bestFrac
}

func sortedSignatures(set map[*model.Signature]bool) []*model.Signature {
	out := make([]*model.Signature, 0, len(set))
	for sig := range set {
		out = append(out, sig)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out
}
