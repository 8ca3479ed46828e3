// File: structure.go — the methyl-pair distance graph.
package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/nmrassign/methylcsp/core"
)

// Structure holds every methyl in a protein structure together with the
// pairwise distances known between them. Topology (which pairs have a
// known distance at all) is tracked with a core.Graph keyed by methyl
// label; the distance values themselves live in a sidecar map, since
// core.Edge weights are integral and these are continuous angstrom values.
type Structure struct {
	g         *core.Graph
	methyls   map[string]*Methyl
	distances map[pairKey]float64
}

type pairKey struct{ a, b string }

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// NewStructure returns an empty Structure.
func NewStructure() *Structure {
	return &Structure{
		g:         core.NewGraph(core.WithDirected(false)),
		methyls:   make(map[string]*Methyl),
		distances: make(map[pairKey]float64),
	}
}

// AddMethyl registers m in the structure. Adding a methyl whose label is
// already registered is a no-op: the first registration is kept.
func (s *Structure) AddMethyl(m *Methyl) error {
	label := m.Label()
	if _, exists := s.methyls[label]; exists {
		return nil
	}
	if err := s.g.AddVertex(label); err != nil {
		return err
	}
	s.methyls[label] = m

	return nil
}

// Methyl looks up a registered methyl by label.
func (s *Structure) Methyl(label string) (*Methyl, bool) {
	m, ok := s.methyls[label]
	return m, ok
}

// Methyls returns every registered methyl, ordered by label.
func (s *Structure) Methyls() []*Methyl {
	labels := make([]string, 0, len(s.methyls))
	for label := range s.methyls {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]*Methyl, len(labels))
	for i, label := range labels {
		out[i] = s.methyls[label]
	}

	return out
}

// SetDistance records the known pairwise distance between a and b, adding a
// topology edge between them if one does not already exist.
func (s *Structure) SetDistance(a, b *Methyl, distance float64) error {
	la, lb := a.Label(), b.Label()
	if _, ok := s.methyls[la]; !ok {
		return fmt.Errorf("model: methyl %s not registered", la)
	}
	if _, ok := s.methyls[lb]; !ok {
		return fmt.Errorf("model: methyl %s not registered", lb)
	}

	s.distances[newPairKey(la, lb)] = distance

	if !s.hasEdge(la, lb) {
		if _, err := s.g.AddEdge(la, lb, 0); err != nil {
			return err
		}
	}

	return nil
}

func (s *Structure) hasEdge(la, lb string) bool {
	edges, err := s.g.Neighbors(la)
	if err != nil {
		return false
	}
	for _, e := range edges {
		if (e.From == la && e.To == lb) || (e.From == lb && e.To == la) {
			return true
		}
	}

	return false
}

// Distance returns the known distance between a and b, if any.
func (s *Structure) Distance(a, b *Methyl) (float64, bool) {
	d, ok := s.distances[newPairKey(a.Label(), b.Label())]
	return d, ok
}

// Neighbors returns every methyl with a known distance to m.
func (s *Structure) Neighbors(m *Methyl) ([]*Methyl, error) {
	edges, err := s.g.Neighbors(m.Label())
	if err != nil {
		return nil, err
	}

	out := make([]*Methyl, 0, len(edges))
	for _, e := range edges {
		otherLabel := e.To
		if otherLabel == m.Label() {
			otherLabel = e.From
		}
		out = append(out, s.methyls[otherLabel])
	}

	return out, nil
}

// PairwiseDistance computes the r^-6-averaged effective distance between
// two three-atom hydrogen triplets (the three equivalent protons of a
// methyl group), following the standard NOE distance-averaging convention:
// the inverse sixth-power mean of all nine pairwise atom distances,
// inverted back with a -1/6 power.
func PairwiseDistance(triplet1, triplet2 [3][3]float64) float64 {
	var summation float64
	for _, alpha := range triplet1 {
		for _, beta := range triplet2 {
			summation += math.Pow(euclidean(alpha, beta), -6)
		}
	}

	return math.Pow(summation/9, -1.0/6)
}

func euclidean(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
