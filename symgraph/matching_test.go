package symgraph_test

import (
	"context"
	"testing"

	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/symgraph"
)

// buildBipartiteComponent wires n0 (left) reciprocal-linked to n2 and n3
// (right), and n1 (left) to n2, so that a perfect matching of size 2
// exists (n0-n3, n1-n2).
func buildBipartiteComponent() (sg *symgraph.Graph, noes []*model.NOE, err error) {
	n0 := &model.NOE{Type: model.CCH, C1: 1, C2: 2}
	n1 := &model.NOE{Type: model.CCH, C1: 3, C2: 4}
	n2 := &model.NOE{Type: model.CCH, C1: 5, C2: 6}
	n3 := &model.NOE{Type: model.CCH, C1: 7, C2: 8}

	n0.Reciprocals = []*model.NOE{n2, n3}
	n1.Reciprocals = []*model.NOE{n2}

	noes = []*model.NOE{n0, n1, n2, n3}
	sg, err = symgraph.New(noes, false, config.Default())

	return sg, noes, err
}

func TestMaxMatching_SaturatesSmallerSide(t *testing.T) {
	sg, noes, err := buildBipartiteComponent()
	if err != nil {
		t.Fatalf("buildBipartiteComponent: %v", err)
	}

	living, err := sg.LivingGraph()
	if err != nil {
		t.Fatalf("LivingGraph: %v", err)
	}
	components, err := living.Components()
	if err != nil {
		t.Fatalf("Components: %v", err)
	}
	if len(components) != 1 || len(components[0]) != 4 {
		t.Fatalf("expected one 4-member component, got %v", components)
	}

	matching, err := living.MaxMatching(context.Background(), components[0])
	if err != nil {
		t.Fatalf("MaxMatching: %v", err)
	}

	left, _, err := living.Bipartition(components[0])
	if err != nil {
		t.Fatalf("Bipartition: %v", err)
	}
	if len(matching) != len(left) {
		t.Errorf("matching saturates %d of %d left vertices", len(matching), len(left))
	}
	_ = noes
}
