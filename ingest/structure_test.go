package ingest_test

import (
	"testing"

	"github.com/nmrassign/methylcsp/ingest"
)

const sampleStructureJSON = `{
  "vertices": [
    {"color": "L", "seqid": 42, "order": "1", "added": false},
    {"color": "L", "seqid": 42, "order": "2", "added": false},
    {"color": "V", "seqid": 10, "order": "1", "added": true}
  ],
  "edges": [
    ["L42.1", "L42.2", [3.8, 3.9]],
    ["L42.1", "V10.1", [9.1]]
  ]
}`

func TestLoadStructure(t *testing.T) {
	s, err := ingest.LoadStructure([]byte(sampleStructureJSON))
	if err != nil {
		t.Fatalf("LoadStructure: %v", err)
	}
	if len(s.Methyls()) != 3 {
		t.Fatalf("len(Methyls()) = %d; want 3", len(s.Methyls()))
	}

	a, _ := s.Methyl("L42.1")
	b, _ := s.Methyl("L42.2")
	d, ok := s.Distance(a, b)
	if !ok || d != 3.8 {
		t.Errorf("Distance(L42.1, L42.2) = %v, %v; want 3.8, true", d, ok)
	}
}

func TestLoadStructure_UnknownEdgeVertex(t *testing.T) {
	_, err := ingest.LoadStructure([]byte(`{
		"vertices": [{"color":"A","seqid":1,"order":"","added":false}],
		"edges": [["A1", "A2", [1.0]]]
	}`))
	if err == nil {
		t.Errorf("expected error for edge referencing unknown methyl")
	}
}

func TestLoadStructure_MalformedJSON(t *testing.T) {
	_, err := ingest.LoadStructure([]byte(`not json`))
	if err == nil {
		t.Errorf("expected error for malformed JSON")
	}
}
