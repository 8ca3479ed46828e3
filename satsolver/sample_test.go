package satsolver

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/nmrassign/methylcsp/cnf"
	"github.com/nmrassign/methylcsp/model"
)

func TestWeightFile_AppliesInverseExponent(t *testing.T) {
	costs := map[int]float64{5: 2.0}
	out := weightFile(costs, 3.0)

	wantWeight := math.Pow(2.0, -3.0)

	var v, polarity int
	var weight float64
	if _, err := fmt.Sscanf(strings.TrimSpace(out), "%d %d %g", &v, &polarity, &weight); err != nil {
		t.Fatalf("parse weight line: %v", err)
	}
	if v != 5 || polarity != 1 {
		t.Fatalf("unexpected weight line fields: %d %d %v", v, polarity, weight)
	}
	if math.Abs(weight-wantWeight) > 1e-9 {
		t.Fatalf("weight = %v, want %v", weight, wantWeight)
	}
}

func TestParseSamples_DecodesBitstringPerLine(t *testing.T) {
	m := model.NewMethyl("A", 1, "", false)
	sig := model.NewSignature("sig1", 20.0, 1.0, []string{"A"})

	f := cnf.NewFormula()
	v1 := f.NextVariable()
	v2 := f.NextVariable()
	f.VariableMeaning[v1] = cnf.Asg{Signature: sig, Methyl: m}

	data := []byte("x,10\ny,01\n")
	models := parseSamples(f, data)

	if len(models) != 2 {
		t.Fatalf("expected 2 parsed samples, got %d", len(models))
	}
	if len(models[0]) != 1 {
		t.Fatalf("expected var %d true in first sample to resolve, got %v", v1, models[0])
	}
	if len(models[1]) != 0 {
		t.Fatalf("expected second sample to resolve no known variable, got %v", models[1])
	}
	_ = v2
}
