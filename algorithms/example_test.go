package algorithms_test

import (
	"fmt"

	"github.com/nmrassign/methylcsp/algorithms"
	"github.com/nmrassign/methylcsp/core"
)

////////////////////////////////////////////////////////////////////////////////
// Helper builders for example graphs
////////////////////////////////////////////////////////////////////////////////

// buildSimpleChain constructs an undirected, unweighted path graph:
//
//	A - B - C
func buildSimpleChain() *core.Graph {
	g := core.NewGraph(core.WithDirected(false))
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddVertex("C")
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	return g
}

// buildMediumDiamond constructs an undirected, unweighted "diamond"-shaped
// graph:
//
//	    A
//	   / \
//	  B   C
//	   \ /
//	    D
//	   / \
//	  E   F
func buildMediumDiamond() *core.Graph {
	g := core.NewGraph(core.WithDirected(false))
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		g.AddVertex(id)
	}
	for _, e := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		g.AddEdge(e.U, e.V, 0)
	}
	return g
}

////////////////////////////////////////////////////////////////////////////////
// BFS Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleBFS_simpleChain shows a breadth-first search on a simple path graph.
// Scenario:
//
//	Graph: A-B-C (undirected, unweighted)
//	Start vertex: "A"
//
// Expected output: visitation order A, then B, then C.
func ExampleBFS_simpleChain() {
	g := buildSimpleChain()
	result, _ := algorithms.BFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABC
}

// ExampleBFS_mediumDiamond shows BFS on a 6-node "diamond" graph.
// Scenario:
//
//	Start vertex: "A"
//
// Expected output: layer by layer: A, then B,C, then D, then E,F.
func ExampleBFS_mediumDiamond() {
	g := buildMediumDiamond()
	result, _ := algorithms.BFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABCDEF
}

////////////////////////////////////////////////////////////////////////////////
// DFS Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleDFS_simpleChain shows depth-first search on a simple path graph.
// Scenario:
//
//	Graph: A-B-C (undirected, unweighted)
//	Start vertex: "A"
//
// Expected output: visits A, then B, then C (single path).
func ExampleDFS_simpleChain() {
	g := buildSimpleChain()
	result, _ := algorithms.DFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABC
}
