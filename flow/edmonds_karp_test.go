// File: edmonds_karp_test.go
package flow_test

import (
	"context"
	"testing"

	"github.com/nmrassign/methylcsp/core"
	"github.com/nmrassign/methylcsp/flow"
)

func newFlowGraph() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

// TestEdmondsKarp_ClassicNetwork checks the textbook 4-vertex network with
// a known max flow of 23 (source->A=16, source->B=13, A->B=10, A->C=12,
// B->D=14, C->B=9, C->sink=20, D->C=7, D->sink=4).
func TestEdmondsKarp_ClassicNetwork(t *testing.T) {
	t.Parallel()

	g := newFlowGraph()
	for _, id := range []string{"S", "A", "B", "C", "D", "T"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}

	edges := []struct {
		from, to string
		cap      int64
	}{
		{"S", "A", 16}, {"S", "B", 13},
		{"A", "B", 10}, {"A", "C", 12},
		{"B", "D", 14}, {"C", "B", 9},
		{"C", "T", 20}, {"D", "C", 7},
		{"D", "T", 4},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.from, e.to, e.cap); err != nil {
			t.Fatalf("AddEdge(%s->%s): %v", e.from, e.to, err)
		}
	}

	maxFlow, residual, err := flow.EdmondsKarp(context.Background(), g, "S", "T", flow.DefaultOptions())
	if err != nil {
		t.Fatalf("EdmondsKarp: %v", err)
	}
	if maxFlow != 23 {
		t.Fatalf("maxFlow = %d, want 23", maxFlow)
	}
	if residual == nil {
		t.Fatal("residual graph is nil")
	}
}

// TestEdmondsKarp_BipartiteMatching models the unit-capacity reduction used
// for maximum-cardinality bipartite matching: source -> left, left -> right
// for every compatible pair, right -> sink, all capacity 1.
func TestEdmondsKarp_BipartiteMatching(t *testing.T) {
	t.Parallel()

	g := newFlowGraph()
	left := []string{"L1", "L2", "L3"}
	right := []string{"R1", "R2", "R3"}
	for _, id := range append(append([]string{"S", "T"}, left...), right...) {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}

	for _, l := range left {
		if _, err := g.AddEdge("S", l, 1); err != nil {
			t.Fatalf("AddEdge(S->%s): %v", l, err)
		}
	}
	for _, r := range right {
		if _, err := g.AddEdge(r, "T", 1); err != nil {
			t.Fatalf("AddEdge(%s->T): %v", r, err)
		}
	}

	// Compatibility: L1-R1, L1-R2, L2-R2, L3-R2, L3-R3 -> max matching 3
	// (e.g. L1-R1, L2-R2, L3-R3).
	compat := [][2]string{
		{"L1", "R1"}, {"L1", "R2"},
		{"L2", "R2"},
		{"L3", "R2"}, {"L3", "R3"},
	}
	for _, c := range compat {
		if _, err := g.AddEdge(c[0], c[1], 1); err != nil {
			t.Fatalf("AddEdge(%s->%s): %v", c[0], c[1], err)
		}
	}

	maxFlow, _, err := flow.EdmondsKarp(context.Background(), g, "S", "T", flow.DefaultOptions())
	if err != nil {
		t.Fatalf("EdmondsKarp: %v", err)
	}
	if maxFlow != 3 {
		t.Fatalf("maxFlow = %d, want 3 (maximum matching size)", maxFlow)
	}
}

func TestEdmondsKarp_MissingVertices(t *testing.T) {
	t.Parallel()

	g := newFlowGraph()
	if err := g.AddVertex("S"); err != nil {
		t.Fatalf("AddVertex(S): %v", err)
	}

	if _, _, err := flow.EdmondsKarp(context.Background(), g, "S", "T", flow.DefaultOptions()); err != flow.ErrSinkNotFound {
		t.Fatalf("err = %v, want ErrSinkNotFound", err)
	}
	if _, _, err := flow.EdmondsKarp(context.Background(), g, "X", "S", flow.DefaultOptions()); err != flow.ErrSourceNotFound {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestEdmondsKarp_NoPath(t *testing.T) {
	t.Parallel()

	g := newFlowGraph()
	for _, id := range []string{"S", "T"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}

	maxFlow, residual, err := flow.EdmondsKarp(context.Background(), g, "S", "T", flow.DefaultOptions())
	if err != nil {
		t.Fatalf("EdmondsKarp: %v", err)
	}
	if maxFlow != 0 {
		t.Fatalf("maxFlow = %d, want 0", maxFlow)
	}
	if residual.EdgeCount() != 0 {
		t.Fatalf("residual edge count = %d, want 0", residual.EdgeCount())
	}
}

func TestEdmondsKarp_CancelledContext(t *testing.T) {
	t.Parallel()

	g := newFlowGraph()
	for _, id := range []string{"S", "A", "T"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}
	if _, err := g.AddEdge("S", "A", 5); err != nil {
		t.Fatalf("AddEdge(S->A): %v", err)
	}
	if _, err := g.AddEdge("A", "T", 5); err != nil {
		t.Fatalf("AddEdge(A->T): %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := flow.EdmondsKarp(ctx, g, "S", "T", flow.DefaultOptions())
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
