// File: network.go — synthetic reciprocal-pair NOE network generation.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/nmrassign/methylcsp/builder"
	"github.com/nmrassign/methylcsp/core"
	"github.com/nmrassign/methylcsp/model"
)

// RandomNetwork builds n synthetic NOE peaks wired into reciprocal pairs
// by an Erdos-Renyi-style random topology with independent edge
// probability p, seeded for reproducibility. Each sampled edge (i,j)
// becomes a reciprocal link between vertex i's and vertex j's NOE —
// the network shape symgraph.New would derive from the Reciprocals
// already present, bypassing chemical-shift symmetry detection
// entirely, since the topology itself is the object under test.
//
// Chemical shifts are filled in with a fixed, deterministic spread
// purely so every NOE carries well-formed (non-diagonal) field values;
// they carry no experimental meaning.
func RandomNetwork(n int, p float64, seed int64) ([]*model.NOE, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(false)},
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(n, p),
	)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	ids := g.Vertices()

	noeOf := make(map[string]*model.NOE, len(ids))
	for _, id := range ids {
		noeOf[id] = &model.NOE{
			Type: model.CCH,
			C1:   10.0 + 40.0*rng.Float64(),
			C2:   60.0 + 40.0*rng.Float64(),
			H1:   0.5 + 2.0*rng.Float64(),
		}
	}

	linked := make(map[[2]string]bool, len(ids))
	for _, id := range ids {
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("synth: %w", err)
		}

		for _, e := range neighbors {
			other := e.To
			if other == id {
				continue
			}
			if linked[[2]string{other, id}] {
				continue
			}
			linked[[2]string{id, other}] = true

			a, b := noeOf[id], noeOf[other]
			a.Reciprocals = append(a.Reciprocals, b)
			b.Reciprocals = append(b.Reciprocals, a)
		}
	}

	out := make([]*model.NOE, 0, len(ids))
	for _, id := range ids {
		out = append(out, noeOf[id])
	}

	return out, nil
}
