package marginal

import (
	"context"
	"testing"

	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/isocsp"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/satsolver"
)

func buildMarginalFixture(t *testing.T) (*isocsp.CSP, *model.Signature, *model.Signature, *model.Methyl, *model.Methyl) {
	t.Helper()

	structure := model.NewStructure()
	m1 := model.NewMethyl("A", 1, "", false)
	m2 := model.NewMethyl("A", 2, "", false)
	if err := structure.AddMethyl(m1); err != nil {
		t.Fatalf("AddMethyl m1: %v", err)
	}
	if err := structure.AddMethyl(m2); err != nil {
		t.Fatalf("AddMethyl m2: %v", err)
	}
	if err := structure.SetDistance(m1, m2, 5.0); err != nil {
		t.Fatalf("SetDistance: %v", err)
	}

	sigA := model.NewSignature("sigA", 20.0, 1.0, []string{"A"})
	sigB := model.NewSignature("sigB", 20.0, 1.0, []string{"A"})

	g := isocsp.NewGraph([]*model.Signature{sigA, sigB})
	g.AddEdge(sigA, sigB, false)

	csp := isocsp.Build(g, structure, config.Default(), true)

	return csp, sigA, sigB, m1, m2
}

func stubSample(samples []satsolver.Model) Sampler {
	return func(_ context.Context, _ *cnf.Formula, _ map[int]float64, _ float64, _ int) ([]satsolver.Model, error) {
		return samples, nil
	}
}

func TestMarginalize_ComputesSeqIDFrequencies(t *testing.T) {
	csp, sigA, sigB, m1, m2 := buildMarginalFixture(t)

	samples := []satsolver.Model{
		{cnf.Asg{Signature: sigA, Methyl: m1}, cnf.Asg{Signature: sigB, Methyl: m2}},
		{cnf.Asg{Signature: sigA, Methyl: m1}, cnf.Asg{Signature: sigB, Methyl: m1}},
		{cnf.Asg{Signature: sigA, Methyl: m2}, cnf.Asg{Signature: sigB, Methyl: m2}},
		{cnf.Asg{Signature: sigA, Methyl: m1}, cnf.Asg{Signature: sigB, Methyl: m2}},
	}

	marginals, returned, err := Marginalize(context.Background(), stubSample(samples), csp, 2.0, 4)
	if err != nil {
		t.Fatalf("Marginalize: %v", err)
	}
	if len(returned) != 4 {
		t.Fatalf("expected 4 samples echoed back, got %d", len(returned))
	}

	if got := marginals[sigA][m1.SeqID]; got != 0.75 {
		t.Fatalf("marginals[sigA][%d] = %v, want 0.75", m1.SeqID, got)
	}
	if got := marginals[sigA][m2.SeqID]; got != 0.25 {
		t.Fatalf("marginals[sigA][%d] = %v, want 0.25", m2.SeqID, got)
	}
	if got := marginals[sigB][m2.SeqID]; got != 0.75 {
		t.Fatalf("marginals[sigB][%d] = %v, want 0.75", m2.SeqID, got)
	}
}
