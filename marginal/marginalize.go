// File: marginalize.go — seqid-granularity marginal assignment
// frequencies from weighted sampling.
package marginal

import (
	"context"

	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/isocsp"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/satsolver"
)

// Sampler is the weighted-sampling step Marginalize drives. satsolver.Sample
// satisfies this signature directly; tests substitute a stub to exercise
// the marginal/correlation math without an external sampler process.
type Sampler func(ctx context.Context, f *cnf.Formula, costs map[int]float64, exponent float64, n int) ([]satsolver.Model, error)

// Marginals[sig][seqid] is the fraction of samples in which sig was
// assigned some methyl carrying that sequence position. Identifying by
// seqid rather than by methyl collapses the two branches of a geminal
// pair (same residue, different Order) into one figure.
type Marginals map[*model.Signature]map[int]float64

// Marginalize draws n weighted samples of csp's formula — biased toward
// structurally shorter edg assignments via exponent, per
// csp.VariableCost — and reduces each sample down to seqid-granularity
// marginal frequencies per signature. It also returns the raw samples,
// needed by CorrelateAssignments to compute joint frequencies.
func Marginalize(ctx context.Context, sample Sampler, csp *isocsp.CSP, exponent float64, n int) (Marginals, []satsolver.Model, error) {
	samples, err := sample(ctx, csp.Formula, csp.VariableCost, exponent, n)
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[*model.Signature]map[int]int, len(csp.AssignmentVariables))
	for sig := range csp.AssignmentVariables {
		counts[sig] = make(map[int]int)
	}

	for _, m := range samples {
		for _, v := range m {
			asg, ok := v.(cnf.Asg)
			if !ok {
				continue
			}
			if _, tracked := counts[asg.Signature]; !tracked {
				continue
			}
			counts[asg.Signature][asg.Methyl.SeqID]++
		}
	}

	total := float64(len(samples))
	marginals := make(Marginals, len(counts))
	for sig, bySeqID := range counts {
		marginals[sig] = make(map[int]float64, len(bySeqID))
		if total == 0 {
			continue
		}
		for seqID, c := range bySeqID {
			marginals[sig][seqID] = float64(c) / total
		}
	}

	return marginals, samples, nil
}
