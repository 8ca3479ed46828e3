package enumerator

import (
	"context"
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/satsolver"
)

// stubSolver reports any assignment variable the formula's base clauses
// have not yet forbidden via a unary negative clause, stopping once every
// domain value for the probed signature has been ruled out.
func stubSolver(f *cnf.Formula, asgvar map[*model.Signature]map[*model.Methyl]int) Solver {
	return func(_ context.Context, formula *cnf.Formula) (satsolver.Model, error) {
		forbidden := make(map[int]bool)
		markUnary := func(clauses [][]int) {
			for _, clause := range clauses {
				if len(clause) == 1 && clause[0] < 0 {
					forbidden[-clause[0]] = true
				}
			}
		}
		markUnary(formula.BaseClauses)
		markUnary(formula.AuxClauses)

		for sig, table := range asgvar {
			for m, v := range table {
				if !forbidden[v] {
					return satsolver.Model{cnf.Asg{Signature: sig, Methyl: m}}, nil
				}
			}
		}

		return nil, nil
	}
}

func TestEnumerate_DiscoversFullSupportAndTerminates(t *testing.T) {
	sig := model.NewSignature("sig1", 20.0, 1.0, []string{"A"})
	m1 := model.NewMethyl("A", 1, "", false)
	m2 := model.NewMethyl("A", 2, "", false)

	f := cnf.NewFormula()
	v1 := f.NextVariable()
	v2 := f.NextVariable()
	f.VariableMeaning[v1] = cnf.Asg{Signature: sig, Methyl: m1}
	f.VariableMeaning[v2] = cnf.Asg{Signature: sig, Methyl: m2}

	asgvar := map[*model.Signature]map[*model.Methyl]int{
		sig: {m1: v1, m2: v2},
	}

	rng := rand.New(rand.NewSource(1))
	logger := zaptest.NewLogger(t)

	support, err := Enumerate(context.Background(), stubSolver(f, asgvar), f, asgvar, rng, logger)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	if !support[sig][m1] || !support[sig][m2] {
		t.Fatalf("expected both methyls in support set, got %v", support[sig])
	}
}
