// File: structure.go — loading a structure's methyl graph from JSON.
package ingest

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/nmrassign/methylcsp/model"
)

type structureDoc struct {
	Vertices []vertexDoc `json:"vertices"`
	Edges    []edgeEntry `json:"edges"`
}

type vertexDoc struct {
	Color string `json:"color"`
	SeqID int    `json:"seqid"`
	Order string `json:"order"`
	Added bool   `json:"added"`
}

// edgeEntry decodes one [from, to, distances] tuple from the structure's
// edge list.
type edgeEntry struct {
	From      string
	To        string
	Distances []float64
}

func (e *edgeEntry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: edge entry: %v", ErrMalformedRow, err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: edge entry must have 3 elements, got %d", ErrMalformedRow, len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.From); err != nil {
		return fmt.Errorf("%w: edge from-label: %v", ErrMalformedRow, err)
	}
	if err := json.Unmarshal(raw[1], &e.To); err != nil {
		return fmt.Errorf("%w: edge to-label: %v", ErrMalformedRow, err)
	}
	if err := json.Unmarshal(raw[2], &e.Distances); err != nil {
		return fmt.Errorf("%w: edge distances: %v", ErrMalformedRow, err)
	}

	return nil
}

// LoadStructure decodes a structure document: a list of methyl vertices
// and a list of [from, to, distances] edges, where distances[0] is taken
// as the canonical pairwise distance for that pair.
func LoadStructure(data []byte) (*model.Structure, error) {
	var doc structureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	structure := model.NewStructure()
	byLabel := make(map[string]*model.Methyl, len(doc.Vertices))

	for _, v := range doc.Vertices {
		m := model.NewMethyl(v.Color, v.SeqID, v.Order, v.Added)
		if err := structure.AddMethyl(m); err != nil {
			return nil, err
		}
		byLabel[m.Label()] = m
	}

	for _, e := range doc.Edges {
		from, ok := byLabel[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: edge references unknown methyl %q", ErrMalformedRow, e.From)
		}
		to, ok := byLabel[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: edge references unknown methyl %q", ErrMalformedRow, e.To)
		}
		if len(e.Distances) == 0 {
			return nil, fmt.Errorf("%w: edge %s-%s has no distance", ErrMalformedRow, e.From, e.To)
		}
		if err := structure.SetDistance(from, to, e.Distances[0]); err != nil {
			return nil, err
		}
	}

	return structure, nil
}
