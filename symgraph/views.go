// File: views.go — derived views of the symmetrization graph.
package symgraph

import (
	"github.com/nmrassign/methylcsp/algorithms"
	"github.com/nmrassign/methylcsp/core"
	"github.com/nmrassign/methylcsp/model"
)

// View is a read-only topology snapshot derived from a Graph: it keeps the
// underlying core.Graph and the vertex-ID-to-NOE mapping needed to answer
// queries in terms of NOEs rather than opaque vertex IDs.
type View struct {
	g       *core.Graph
	idToNOE map[string]*model.NOE
	noeToID map[*model.NOE]string
}

// NOEs returns every NOE present in the view, in a stable order.
func (v *View) NOEs() []*model.NOE {
	ids := v.g.Vertices()
	out := make([]*model.NOE, 0, len(ids))
	for _, id := range ids {
		out = append(out, v.idToNOE[id])
	}

	return out
}

// Degree returns the number of edges touching n.
func (v *View) Degree(n *model.NOE) (int, error) {
	neighbors, err := v.Neighbors(n)
	if err != nil {
		return 0, err
	}

	return len(neighbors), nil
}

// Neighbors returns every NOE connected to n by an edge in the view.
func (v *View) Neighbors(n *model.NOE) ([]*model.NOE, error) {
	id := v.idOf(n)
	edges, err := v.g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	out := make([]*model.NOE, 0, len(edges))
	for _, e := range edges {
		otherID := e.To
		if otherID == id {
			otherID = e.From
		}
		out = append(out, v.idToNOE[otherID])
	}

	return out, nil
}

// Edges returns every edge in the view as an (a, b) pair, each unordered
// pair reported once.
func (v *View) Edges() [][2]*model.NOE {
	seen := make(map[pairKey]bool)
	var out [][2]*model.NOE
	for _, id := range v.g.Vertices() {
		edges, _ := v.g.Neighbors(id)
		for _, e := range edges {
			key := newPairKey(e.From, e.To)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, [2]*model.NOE{v.idToNOE[e.From], v.idToNOE[e.To]})
		}
	}

	return out
}

// Components partitions the view into connected components, each reported
// as a slice of NOEs.
func (v *View) Components() ([][]*model.NOE, error) {
	ccs, err := algorithms.ConnectedComponents(v.g)
	if err != nil {
		return nil, err
	}

	out := make([][]*model.NOE, len(ccs))
	for i, cc := range ccs {
		members := make([]*model.NOE, len(cc))
		for j, id := range cc {
			members[j] = v.idToNOE[id]
		}
		out[i] = members
	}

	return out, nil
}

func (v *View) idOf(n *model.NOE) string {
	return v.noeToID[n]
}

// LivingGraph returns a view of sg with every dead edge removed. All
// vertices are kept, including any left isolated.
func (sg *Graph) LivingGraph() (*View, error) {
	g2 := core.NewGraph(core.WithDirected(false))
	for _, id := range sg.g.Vertices() {
		if err := g2.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for key, st := range sg.states {
		if st.dead {
			continue
		}
		if _, err := g2.AddEdge(key.a, key.b, 0); err != nil {
			return nil, err
		}
	}

	return &View{g: g2, idToNOE: sg.idToNOE, noeToID: sg.noeToID}, nil
}

// ActiveGraph returns the living graph restricted to active edges, with
// any vertex left at degree zero removed.
func (sg *Graph) ActiveGraph() (*View, error) {
	return sg.filteredLivingGraph(true)
}

// InactiveGraph returns the living graph restricted to inactive edges,
// with any vertex left at degree zero removed.
func (sg *Graph) InactiveGraph() (*View, error) {
	return sg.filteredLivingGraph(false)
}

func (sg *Graph) filteredLivingGraph(wantActive bool) (*View, error) {
	g2 := core.NewGraph(core.WithDirected(false))

	for key, st := range sg.states {
		if st.dead {
			continue
		}
		if st.active != wantActive {
			continue
		}
		// Vertices are only added here, alongside an edge, so an NOE
		// with no surviving edge of the requested activity is correctly
		// left out rather than appearing isolated.
		if _, err := g2.AddEdge(key.a, key.b, 0); err != nil {
			return nil, err
		}
	}

	return &View{g: g2, idToNOE: sg.idToNOE, noeToID: sg.noeToID}, nil
}

// SetActivityLevel activates every edge in each living-graph connected
// component with maxSize vertices or fewer, and deactivates every edge in
// every larger component.
func (sg *Graph) SetActivityLevel(maxSize int) error {
	living, err := sg.LivingGraph()
	if err != nil {
		return err
	}

	components, err := living.Components()
	if err != nil {
		return err
	}

	for _, comp := range components {
		small := len(comp) <= maxSize
		memberSet := make(map[*model.NOE]bool, len(comp))
		for _, n := range comp {
			memberSet[n] = true
		}

		for key, st := range sg.states {
			if st.dead {
				continue
			}
			a, b := sg.idToNOE[key.a], sg.idToNOE[key.b]
			if !memberSet[a] || !memberSet[b] {
				continue
			}
			st.active = small
		}
	}

	return nil
}
