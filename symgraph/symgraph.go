// File: symgraph.go — the symmetrization graph over NOE pairs.
package symgraph

import (
	"errors"
	"fmt"

	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/core"
	"github.com/nmrassign/methylcsp/model"
)

// ErrNoEdge is returned by Activate, Deactivate, and Kill when the two
// NOEs given are not connected by a potential-reciprocity edge.
var ErrNoEdge = errors.New("symgraph: no edge between the given NOEs")

// edgeState tracks the tri-state status of a potential-reciprocity edge:
// an edge starts neither dead nor active, becomes active when its two NOEs
// are believed to be genuinely reciprocal, and becomes dead when they are
// ruled out entirely.
type edgeState struct {
	active bool
	dead   bool
}

type pairKey struct{ a, b string }

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Graph is the symmetrization graph: a vertex per NOE, with an edge
// between any two NOEs that are either already known reciprocals or pass
// the chemical-shift symmetry test, each edge carrying a tri-state
// dead/active flag.
type Graph struct {
	g *core.Graph

	idToNOE map[string]*model.NOE
	noeToID map[*model.NOE]string

	states map[pairKey]*edgeState
}

// New builds a Graph from source NOEs. Every pair already linked through
// Reciprocals gets an edge. When findSymmetries is true, every remaining
// pair with no known reciprocals that passes NOE.Symmetric under p also
// gets an edge — mirroring the reference toolchain's behavior of only
// searching for symmetries among NOEs nobody has already vouched for.
func New(source []*model.NOE, findSymmetries bool, p config.Params) (*Graph, error) {
	sg := &Graph{
		g:       core.NewGraph(core.WithDirected(false)),
		idToNOE: make(map[string]*model.NOE, len(source)),
		noeToID: make(map[*model.NOE]string, len(source)),
		states:  make(map[pairKey]*edgeState),
	}

	for i, n := range source {
		id := fmt.Sprintf("n%d", i)
		if err := sg.g.AddVertex(id); err != nil {
			return nil, err
		}
		sg.idToNOE[id] = n
		sg.noeToID[n] = id
	}

	for _, n := range source {
		for _, r := range n.Reciprocals {
			if _, ok := sg.noeToID[r]; !ok {
				continue
			}
			if err := sg.addPotentialEdge(n, r); err != nil {
				return nil, err
			}
		}
	}

	if findSymmetries {
		for i := 0; i < len(source); i++ {
			for j := i + 1; j < len(source); j++ {
				a, b := source[i], source[j]
				if len(a.Reciprocals) > 0 || len(b.Reciprocals) > 0 {
					continue
				}
				if a.Symmetric(b, p) {
					if err := sg.addPotentialEdge(a, b); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return sg, nil
}

func (sg *Graph) addPotentialEdge(a, b *model.NOE) error {
	ia, ib := sg.noeToID[a], sg.noeToID[b]
	key := newPairKey(ia, ib)
	if _, exists := sg.states[key]; exists {
		return nil
	}
	if _, err := sg.g.AddEdge(ia, ib, 0); err != nil {
		return err
	}
	sg.states[key] = &edgeState{}

	return nil
}

func (sg *Graph) stateFor(a, b *model.NOE) (*edgeState, error) {
	ia, iaOK := sg.noeToID[a]
	ib, ibOK := sg.noeToID[b]
	if !iaOK || !ibOK {
		return nil, ErrNoEdge
	}
	st, ok := sg.states[newPairKey(ia, ib)]
	if !ok {
		return nil, ErrNoEdge
	}

	return st, nil
}

// Activate marks the edge between a and b as active, i.e. a real contact.
func (sg *Graph) Activate(a, b *model.NOE) error {
	st, err := sg.stateFor(a, b)
	if err != nil {
		return err
	}
	st.active = true

	return nil
}

// Deactivate marks the edge between a and b as inactive.
func (sg *Graph) Deactivate(a, b *model.NOE) error {
	st, err := sg.stateFor(a, b)
	if err != nil {
		return err
	}
	st.active = false

	return nil
}

// Kill marks the edge between a and b as dead, i.e. ruled out: it is
// excluded from LivingGraph and everything derived from it.
func (sg *Graph) Kill(a, b *model.NOE) error {
	st, err := sg.stateFor(a, b)
	if err != nil {
		return err
	}
	st.dead = true

	return nil
}

// NOEs returns every NOE in the graph, in a stable order.
func (sg *Graph) NOEs() []*model.NOE {
	out := make([]*model.NOE, 0, len(sg.idToNOE))
	for _, id := range sg.g.Vertices() {
		out = append(out, sg.idToNOE[id])
	}

	return out
}

// Edge describes one potential-reciprocity edge and its current tri-state
// status.
type Edge struct {
	A, B   *model.NOE
	Active bool
	Dead   bool
}

// AllEdges returns every potential-reciprocity edge in the graph,
// regardless of its dead/active status — the full edge set LivingGraph
// and the active/inactive views are filtered from.
func (sg *Graph) AllEdges() []Edge {
	out := make([]Edge, 0, len(sg.states))
	for key, st := range sg.states {
		out = append(out, Edge{
			A:      sg.idToNOE[key.a],
			B:      sg.idToNOE[key.b],
			Active: st.active,
			Dead:   st.dead,
		})
	}

	return out
}
