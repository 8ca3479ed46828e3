// File: enumerate.go — support-set enumeration over an already-built CSP
// formula.
package enumerator

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/satsolver"
)

// Solver is the solving step Enumerate drives. satsolver.Solve satisfies
// this signature directly; tests substitute a stub to exercise the
// enumeration loop without an external solver process.
type Solver func(context.Context, *cnf.Formula) (satsolver.Model, error)

// Enumerate computes, for every signature in asgvar, the set of methyls
// it could be assigned in some satisfying model of f — its support set.
// f and asgvar are taken directly rather than a concrete CSP type so this
// works identically over a clustercsp.CSP or an isocsp.CSP's formula and
// assignment-variable table.
//
// rng drives which unfinished signature is probed next; callers pass a
// seeded *rand.Rand for deterministic tests, mirroring how the package
// this is grounded on seeds its own fixtures rather than relying on
// global random state. logger receives one Info line per signature whose
// support set closes, replacing the original tqdm progress bar.
func Enumerate(ctx context.Context, solve Solver, f *cnf.Formula, asgvar map[*model.Signature]map[*model.Methyl]int, rng *rand.Rand, logger *zap.Logger) (map[*model.Signature]map[*model.Methyl]bool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	remaining := make([]*model.Signature, 0, len(asgvar))
	for s := range asgvar {
		remaining = append(remaining, s)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].Label < remaining[j].Label })

	support := make(map[*model.Signature]map[*model.Methyl]bool, len(asgvar))
	for _, s := range remaining {
		support[s] = make(map[*model.Methyl]bool)
	}

	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return support, err
		}

		idx := rng.Intn(len(remaining))
		focus := remaining[idx]

		for m := range support[focus] {
			f.AddAuxClause([]int{-asgvar[focus][m]})
		}

		result, err := solve(ctx, f)
		f.Flush()
		if err != nil && !errors.Is(err, satsolver.ErrTimeout) {
			return nil, err
		}

		if len(result) > 0 {
			for _, v := range result {
				asg, ok := v.(cnf.Asg)
				if !ok {
					continue
				}
				if table, tracked := support[asg.Signature]; tracked {
					table[asg.Methyl] = true
				}
			}
			continue
		}

		lits := make([]int, 0, len(support[focus]))
		for m := range support[focus] {
			lits = append(lits, asgvar[focus][m])
		}
		f.AddClause(lits)

		remaining[idx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		logger.Info("support set closed",
			zap.String("signature", focus.Label),
			zap.Int("support_size", len(lits)),
			zap.Int("remaining", len(remaining)),
		)
	}

	return support, nil
}
