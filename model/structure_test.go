package model_test

import (
	"math"
	"testing"

	"github.com/nmrassign/methylcsp/model"
)

func TestStructure_SetDistanceAndLookup(t *testing.T) {
	s := model.NewStructure()
	a := model.NewMethyl("L", 1, "1", false)
	b := model.NewMethyl("V", 2, "", false)

	if err := s.AddMethyl(a); err != nil {
		t.Fatalf("AddMethyl(a): %v", err)
	}
	if err := s.AddMethyl(b); err != nil {
		t.Fatalf("AddMethyl(b): %v", err)
	}
	if err := s.SetDistance(a, b, 4.2); err != nil {
		t.Fatalf("SetDistance: %v", err)
	}

	d, ok := s.Distance(a, b)
	if !ok || d != 4.2 {
		t.Errorf("Distance(a,b) = %v, %v; want 4.2, true", d, ok)
	}
	d, ok = s.Distance(b, a)
	if !ok || d != 4.2 {
		t.Errorf("Distance(b,a) = %v, %v; want 4.2, true (symmetric lookup)", d, ok)
	}

	neighbors, err := s.Neighbors(a)
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neighbors) != 1 || neighbors[0].Label() != "V2" {
		t.Errorf("Neighbors(a) = %v; want [V2]", neighbors)
	}
}

func TestStructure_SetDistanceUnregisteredMethyl(t *testing.T) {
	s := model.NewStructure()
	a := model.NewMethyl("L", 1, "1", false)
	b := model.NewMethyl("V", 2, "", false)
	if err := s.AddMethyl(a); err != nil {
		t.Fatalf("AddMethyl: %v", err)
	}

	if err := s.SetDistance(a, b, 1.0); err == nil {
		t.Errorf("expected error setting distance to unregistered methyl")
	}
}

func TestPairwiseDistance_IdenticalTripletsIsZero(t *testing.T) {
	triplet := [3][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	got := model.PairwiseDistance(triplet, triplet)
	if got != 0 {
		t.Errorf("identical triplets should give a zero distance (zero self-distances); got %v", got)
	}
}

func TestPairwiseDistance_Symmetric(t *testing.T) {
	t1 := [3][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	t2 := [3][3]float64{{5, 0, 0}, {6, 0, 0}, {5, 1, 0}}

	d1 := model.PairwiseDistance(t1, t2)
	d2 := model.PairwiseDistance(t2, t1)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("PairwiseDistance should be symmetric: %v vs %v", d1, d2)
	}
	if d1 <= 0 || math.IsInf(d1, 0) {
		t.Errorf("expected a finite positive distance, got %v", d1)
	}
}
