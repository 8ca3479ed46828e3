package ingest_test

import (
	"errors"
	"testing"

	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/ingest"
	"github.com/nmrassign/methylcsp/model"
)

func TestNewNOE_CCH(t *testing.T) {
	raw, err := ingest.NewNOE(map[string]string{"c1": "20.0", "c2": "30.0", "h2": "1.0"})
	if err != nil {
		t.Fatalf("NewNOE: %v", err)
	}
	if raw.NOE.Type != model.CCH {
		t.Errorf("Type = %v; want CCH", raw.NOE.Type)
	}
}

func TestNewNOE_FourD(t *testing.T) {
	raw, err := ingest.NewNOE(map[string]string{
		"c1": "20.0", "h1": "1.0", "c2": "30.0", "h2": "2.0",
	})
	if err != nil {
		t.Fatalf("NewNOE: %v", err)
	}
	if raw.NOE.Type != model.FourD {
		t.Errorf("Type = %v; want FourD", raw.NOE.Type)
	}
}

func TestNewNOE_HCH(t *testing.T) {
	raw, err := ingest.NewNOE(map[string]string{"h1": "1.0", "c2": "30.0", "h2": "2.0"})
	if err != nil {
		t.Fatalf("NewNOE: %v", err)
	}
	if raw.NOE.Type != model.HCH {
		t.Errorf("Type = %v; want HCH", raw.NOE.Type)
	}
}

func TestNewNOE_RejectsDiagonal(t *testing.T) {
	_, err := ingest.NewNOE(map[string]string{"c1": "20.0", "c2": "20.05", "h2": "1.0"})
	if !errors.Is(err, ingest.ErrDiagonal) {
		t.Errorf("err = %v; want ErrDiagonal", err)
	}
}

func TestNewNOE_MissingRequiredField(t *testing.T) {
	_, err := ingest.NewNOE(map[string]string{"c2": "30.0"})
	if !errors.Is(err, ingest.ErrMalformedRow) {
		t.Errorf("err = %v; want ErrMalformedRow", err)
	}
}

func TestNewNOE_ParsesShortRange(t *testing.T) {
	raw, err := ingest.NewNOE(map[string]string{"c1": "20.0", "c2": "30.0", "h2": "1.0", "short_range": "true"})
	if err != nil {
		t.Fatalf("NewNOE: %v", err)
	}
	if !raw.NOE.ShortRange {
		t.Errorf("ShortRange = false; want true")
	}

	raw, err = ingest.NewNOE(map[string]string{"c1": "20.0", "c2": "30.0", "h2": "1.0"})
	if err != nil {
		t.Fatalf("NewNOE: %v", err)
	}
	if raw.NOE.ShortRange {
		t.Errorf("ShortRange = true; want false when absent")
	}
}

func TestResolveNOEs_ForcedClusterOverridesToleranceSearch(t *testing.T) {
	raw, err := ingest.NewNOE(map[string]string{
		"c1": "20.0", "c2": "99.0", "h2": "9.0", "cluster": "sigA",
	})
	if err != nil {
		t.Fatalf("NewNOE: %v", err)
	}

	sigA := model.NewSignature("sigA", 20.0, 1.0, []string{"L"})
	sigB := model.NewSignature("sigB", 99.0, 9.0, []string{"L"})

	noes := ingest.ResolveNOEs([]*ingest.RawNOE{raw}, []*model.Signature{sigA, sigB}, config.Default())

	if len(noes) != 1 || len(noes[0].Clusters) != 1 || noes[0].Clusters[0] != sigA {
		t.Errorf("expected forced cluster [sigA], got %v", noes[0].Clusters)
	}
}

func TestResolveNOEs_ForcedReciprocalsAreMutual(t *testing.T) {
	a, err := ingest.NewNOE(map[string]string{"c1": "20.0", "c2": "30.0", "h2": "1.0", "label": "n1", "reciprocals": "n2"})
	if err != nil {
		t.Fatalf("NewNOE a: %v", err)
	}
	b, err := ingest.NewNOE(map[string]string{"c1": "50.0", "c2": "60.0", "h2": "1.0", "label": "n2"})
	if err != nil {
		t.Fatalf("NewNOE b: %v", err)
	}
	c, err := ingest.NewNOE(map[string]string{"c1": "70.0", "c2": "80.0", "h2": "1.0", "label": "n3"})
	if err != nil {
		t.Fatalf("NewNOE c: %v", err)
	}

	noes := ingest.ResolveNOEs([]*ingest.RawNOE{a, b, c}, nil, config.Default())

	if len(noes[0].Reciprocals) != 1 || noes[0].Reciprocals[0] != noes[1] {
		t.Errorf("expected n1's only reciprocal to be n2, got %v", noes[0].Reciprocals)
	}
	if len(noes[1].Reciprocals) != 1 || noes[1].Reciprocals[0] != noes[0] {
		t.Errorf("expected n2's only reciprocal to be n1 (mutual), got %v", noes[1].Reciprocals)
	}
	if len(noes[2].Reciprocals) != 0 {
		t.Errorf("expected n3 to have no reciprocals, got %v", noes[2].Reciprocals)
	}
}
