package rank

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStrategiesEdgeCases(t *testing.T) {
	c := Criteria{Weights: map[string]float64{"yield": 1, "volatility": 1}}
	for _, s := range Strategies {
		t.Run(s.Name(), func(t *testing.T) {
			got, err := s.Rank(nil, c)
			if err != nil || len(got) != 0 {
				t.Errorf("%s.Rank(nil) = %v, %v want empty", s.Name(), got, err)
			}

			got, err = s.Rank([]Entity{entity("A", "yield", 1.0, "volatility", 2.0)}, c)
			if err != nil || len(got) != 1 || got[0].Rank != 1 {
				t.Errorf("%s.Rank(single) = %+v, %v want rank 1", s.Name(), got, err)
			}

			entities := []Entity{
				entity("A", "yield", 1.0, "volatility", 2.0),
				entity("B", "yield", 1.0, "volatility", nil),
				entity("C", "yield", 1.0),
			}
			got, err = s.Rank(entities, c)
			if err != nil {
				t.Fatalf("%s.Rank(missing metrics) error = %v", s.Name(), err)
			}
			if diff := cmp.Diff([]idRank{{"A", 1}}, ranks(got)); diff != "" {
				t.Errorf("%s.Rank(missing metrics) mismatch (-want +got):\n%s", s.Name(), diff)
			}
		})
	}
}

func TestRankErrors(t *testing.T) {
	testCases := []struct {
		name     string
		entities []Entity
		criteria Criteria
		want     error
	}{
		{"negative weight", []Entity{entity("A", "yield", 1.0)}, Criteria{Weights: map[string]float64{"yield": -1}}, ErrNegativeWeight},
		{"duplicate entity", []Entity{entity("A", "yield", 1.0), entity("A", "yield", 2.0)}, Criteria{Weights: map[string]float64{"yield": 1}}, ErrDuplicateEntity},
		{"missing id", []Entity{entity("", "yield", 1.0)}, Criteria{Weights: map[string]float64{"yield": 1}}, ErrMissingEntity},
	}
	for _, tc := range testCases {
		for _, s := range Strategies {
			if _, err := s.Rank(tc.entities, tc.criteria); !errors.Is(err, tc.want) {
				t.Errorf("%s.Rank(%s) error = %v want %v", s.Name(), tc.name, err, tc.want)
			}
		}
	}
}

func TestEligible(t *testing.T) {
	entities := []Entity{entity("Z", "yield", 1.0), entity("Y"), entity("X", "yield", 2.0)}
	kept, excluded, err := Eligible(entities, Criteria{Weights: map[string]float64{"yield": 1}})
	if err != nil {
		t.Fatalf("Eligible() error = %v", err)
	}
	if len(kept) != 2 || kept[0].EntityID != "X" || kept[1].EntityID != "Z" {
		t.Errorf("Eligible() kept = %+v want X, Z", kept)
	}
	if diff := cmp.Diff([]string{"Y"}, excluded); diff != "" {
		t.Errorf("Eligible() excluded mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies {
		if got, err := ParseStrategy(strings.ToUpper(s.Name())); err != nil || got.Name() != s.Name() {
			t.Errorf("ParseStrategy(%q) = %v, %v want %v", s.Name(), got, err, s.Name())
		}
	}
	if _, err := ParseStrategy("borda"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(borda) error = %v want %v", err, ErrUnknownStrategy)
	}
}

// TestNearTies checks that scores chained within the resolution do not all
// collapse into one tie.
func TestNearTies(t *testing.T) {
	results := []Result{{EntityID: "A", Score: 0}, {EntityID: "B", Score: 0.6e-9}, {EntityID: "C", Score: 1.2e-9}}
	order(results, true)
	if diff := cmp.Diff([]idRank{{"B", 1}, {"C", 1}, {"A", 3}}, ranks(results)); diff != "" {
		t.Errorf("order() mismatch (-want +got):\n%s", diff)
	}
	if equal(0, 0.6e-9) || !equal(0.6e-9, 1.2e-9) {
		t.Errorf("equal() is not consistent with a 1e-9 resolution")
	}

	entities := []Entity{entity("A", "yield", 0.0), entity("B", "yield", 0.6e-9), entity("C", "yield", 1.2e-9)}
	got, err := RankWeighted{}.Rank(entities, Criteria{Weights: map[string]float64{"yield": 1}})
	if err != nil {
		t.Fatalf("RankWeighted.Rank() error = %v", err)
	}
	if diff := cmp.Diff([]idRank{{"B", 1}, {"C", 1}, {"A", 3}}, ranks(got)); diff != "" {
		t.Errorf("RankWeighted.Rank() mismatch (-want +got):\n%s", diff)
	}
}
