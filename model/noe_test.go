package model_test

import (
	"testing"

	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
)

func TestNOE_Symmetric_CCH(t *testing.T) {
	p := config.Default()
	a := &model.NOE{Type: model.CCH, C1: 20.0, C2: 30.0}
	b := &model.NOE{Type: model.CCH, C1: 30.01, C2: 20.02}

	if !a.Symmetric(b, p) {
		t.Errorf("expected CCH reciprocal pair to be symmetric")
	}

	c := &model.NOE{Type: model.CCH, C1: 30.01, C2: 21.0}
	if a.Symmetric(c, p) {
		t.Errorf("did not expect non-matching CCH pair to be symmetric")
	}
}

func TestNOE_Symmetric_HCH_IgnoresCarbon(t *testing.T) {
	p := config.Default()
	a := &model.NOE{Type: model.HCH, H1: 1.0, H2: 2.0, C1: 99.0}
	b := &model.NOE{Type: model.HCH, H1: 2.001, H2: 1.001, C1: -99.0}

	if !a.Symmetric(b, p) {
		t.Errorf("HCH symmetry should ignore carbon shifts entirely")
	}
}

func TestNOE_Diagonal(t *testing.T) {
	cases := []struct {
		n    model.NOE
		want bool
	}{
		{model.NOE{Type: model.CCH, C1: 20.0, C2: 20.05}, true},
		{model.NOE{Type: model.CCH, C1: 20.0, C2: 25.0}, false},
		{model.NOE{Type: model.HCH, H1: 1.0, H2: 1.005}, true},
		{model.NOE{Type: model.FourD, H1: 1.0, H2: 1.005, C1: 20.0, C2: 20.05}, true},
		{model.NOE{Type: model.FourD, H1: 1.0, H2: 1.005, C1: 20.0, C2: 25.0}, false},
	}

	for i, c := range cases {
		if got := c.n.Diagonal(); got != c.want {
			t.Errorf("case %d: Diagonal() = %v; want %v", i, got, c.want)
		}
	}
}

func TestNOE_SetClusters_UsesReceiverCoordinatesOnBothAxes(t *testing.T) {
	p := config.Default()
	n := &model.NOE{Type: model.CCH, C1: 40.0, C2: 20.0, H1: 1.0, H2: 1.0}

	matches := model.NewSignature("matches", 20.02, 1.01, []string{"A"})
	wrongCarbon := model.NewSignature("wrongCarbon", 40.0, 1.0, []string{"A"})
	wrongHydrogen := model.NewSignature("wrongHydrogen", 20.0, 2.0, []string{"A"})

	n.SetClusters([]*model.Signature{matches, wrongCarbon, wrongHydrogen}, p)

	if len(n.Clusters) != 1 || n.Clusters[0] != matches {
		t.Errorf("expected only %q to cluster, got %v", matches.Label, n.Clusters)
	}
}
