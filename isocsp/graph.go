// File: graph.go — the derived signature graph an isomorphism CSP builds
// its formula over.
package isocsp

import "github.com/nmrassign/methylcsp/model"

// Edge is one signature-graph edge: either derived from a living 2-node
// symmetrization-graph component (its two NOEs' clusterings), or from a
// geminal signature pair. Short records whether either contributing NOE
// endpoint was short-range, which tightens the applicable distance
// threshold when the edge is later consumed by distance constraints.
type Edge struct {
	A, B    *model.Signature
	Short   bool
	Geminal bool
}

// Graph is the signature graph: nodes are signatures, derived edges come
// from resolved 2-node symmetrization components plus geminal pairs.
type Graph struct {
	vertices  []*model.Signature
	edges     []Edge
	neighbors map[*model.Signature][]Edge
}

// NewGraph returns an empty Graph over vertices.
func NewGraph(vertices []*model.Signature) *Graph {
	return &Graph{
		vertices:  vertices,
		neighbors: make(map[*model.Signature][]Edge, len(vertices)),
	}
}

// AddEdge records an edge between a and b, skipping the self-loop that
// results when both NOEs of a 2-node component clustered to the same
// signature.
func (g *Graph) AddEdge(a, b *model.Signature, short bool) {
	if a == b {
		return
	}

	e := Edge{A: a, B: b, Short: short}
	g.edges = append(g.edges, e)
	g.neighbors[a] = append(g.neighbors[a], e)
	g.neighbors[b] = append(g.neighbors[b], e)
}

// AddGeminalEdges adds one edge per geminal signature pair among g's
// vertices, each tagged Geminal so distance constraints know to restrict
// the far side to the near side's geminal partners rather than every
// structurally close methyl.
func (g *Graph) AddGeminalEdges() {
	seen := make(map[*model.Signature]bool)
	for _, s := range g.vertices {
		partner := s.Geminal
		if partner == nil || seen[partner] {
			continue
		}
		seen[s] = true

		e := Edge{A: s, B: partner, Geminal: true}
		g.edges = append(g.edges, e)
		g.neighbors[s] = append(g.neighbors[s], e)
		g.neighbors[partner] = append(g.neighbors[partner], e)
	}
}

// Vertices returns every signature in the graph.
func (g *Graph) Vertices() []*model.Signature { return g.vertices }

// Edges returns every edge in the graph.
func (g *Graph) Edges() []Edge { return g.edges }
