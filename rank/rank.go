// Package rank orders entities (securities) by a weighted combination of
// their metrics.
//
// Two strategies are available: Composite min-max normalizes every metric
// into [0,1] and averages them by weight, RankWeighted ranks the entities on
// every metric and averages the ranks by weight. Both share the same ties
// rule: equal scores share a rank and the next one skips as many ranks as
// there were ties (1, 1, 3).
package rank

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

var (
	// ErrNegativeWeight indicates a metric weight below zero.
	ErrNegativeWeight = errors.New("negative weight")

	// ErrDuplicateEntity indicates two entities with the same id.
	ErrDuplicateEntity = errors.New("duplicate entity")

	// ErrMissingEntity indicates an entity without id.
	ErrMissingEntity = errors.New("missing entity id")

	// ErrUnknownStrategy indicates a strategy name that is not supported.
	ErrUnknownStrategy = errors.New("unknown ranking strategy")
)

// resolution at which scores and metric values are compared.
const resolution = 1e-9

// Entity is a rankable item and its raw metric values. A nil value is a
// missing metric.
type Entity struct {
	ID      string              `json:"entity_id" validate:"required"`
	Metrics map[string]*float64 `json:"metrics"`
}

// Criteria configures a ranking.
type Criteria struct {
	// Weights of every metric, the set of metrics ranked is the set of keys.
	Weights map[string]float64
	// LowerIsBetter flags metrics where the smallest value is the best one (volatility).
	LowerIsBetter map[string]bool
}

// Metrics returns the sorted metric names.
func (c Criteria) Metrics() []string {
	names := make([]string, 0, len(c.Weights))
	for m := range c.Weights {
		names = append(names, m)
	}
	slices.Sort(names)
	return names
}

// Validate checks that weights are non negative.
func (c Criteria) Validate() error {
	for _, m := range c.Metrics() {
		if w := c.Weights[m]; w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("metric %q weight %v: %w", m, w, ErrNegativeWeight)
		}
	}
	return nil
}

// total returns the sum of weights.
func (c Criteria) total() float64 {
	var sum float64
	for _, w := range c.Weights {
		sum += w
	}
	return sum
}

// Result is the ranking of an entity.
type Result struct {
	EntityID   string             `json:"entity_id"`
	RawMetrics map[string]float64 `json:"raw_metrics"`
	// NormalizedScores are per metric in [0,1], 1 is the best (Composite).
	NormalizedScores map[string]float64 `json:"normalized_scores,omitempty"`
	// MetricRanks are per metric ranks, 1 is the best (RankWeighted).
	MetricRanks map[string]int `json:"metric_ranks,omitempty"`
	// Score is the composite score, higher is better for Composite, lower is
	// better for RankWeighted.
	Score float64 `json:"composite_score"`
	Rank  int     `json:"rank"`
}

// Strategy ranks entities under criteria.
//
// Entities lacking any of the criteria metrics are excluded from the result.
// The result is sorted by rank, then by entity id.
type Strategy interface {
	Name() string
	Rank(entities []Entity, c Criteria) ([]Result, error)
}

// Strategies lists the available strategies.
var Strategies = []Strategy{Composite{}, RankWeighted{}}

// ParseStrategy returns the strategy by name.
func ParseStrategy(name string) (Strategy, error) {
	var names []string
	for _, s := range Strategies {
		if strings.EqualFold(s.Name(), name) {
			return s, nil
		}
		names = append(names, s.Name())
	}
	return nil, fmt.Errorf("strategy %q want one of %s: %w", name, strings.Join(names, ", "), ErrUnknownStrategy)
}

// Eligible splits entities into the ones that carry every metric of c, as
// Results sorted by id, and the ids of the excluded ones.
func Eligible(entities []Entity, c Criteria) ([]Result, []string, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	metrics := c.Metrics()
	seen := make(map[string]bool, len(entities))
	var kept []Result
	var excluded []string
	for i, e := range entities {
		if e.ID == "" {
			return nil, nil, fmt.Errorf("entity #%d: %w", i, ErrMissingEntity)
		}
		if seen[e.ID] {
			return nil, nil, fmt.Errorf("entity %q: %w", e.ID, ErrDuplicateEntity)
		}
		seen[e.ID] = true

		raw, ok := e.values(metrics)
		if !ok {
			excluded = append(excluded, e.ID)
			continue
		}
		kept = append(kept, Result{EntityID: e.ID, RawMetrics: raw})
	}
	slices.SortFunc(kept, func(a, b Result) int { return strings.Compare(a.EntityID, b.EntityID) })
	slices.Sort(excluded)
	return kept, excluded, nil
}

// values returns the values of metrics, and false if one is missing.
func (e Entity) values(metrics []string) (map[string]float64, bool) {
	raw := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		v := e.Metrics[m]
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			return nil, false
		}
		raw[m] = *v
	}
	return raw, true
}

// quantize rounds x to the resolution, so that equality is transitive.
func quantize(x float64) float64 { return math.Round(x / resolution) }

// equal reports whether two scores are equal at the resolution.
func equal(a, b float64) bool { return quantize(a) == quantize(b) }

// compare orders a and b at the resolution.
func compare(a, b float64) int {
	qa, qb := quantize(a), quantize(b)
	switch {
	case qa < qb:
		return -1
	case qa > qb:
		return 1
	default:
		return 0
	}
}

// competition assigns competition ranks to results already sorted from best
// to worst by score.
func competition(results []Result, score func(Result) float64) {
	for i := range results {
		if i > 0 && equal(score(results[i]), score(results[i-1])) {
			results[i].Rank = results[i-1].Rank
			continue
		}
		results[i].Rank = i + 1
	}
}

// order sorts results by score (descending if higherIsBetter) at the
// resolution, then by entity id.
func order(results []Result, higherIsBetter bool) {
	slices.SortStableFunc(results, func(a, b Result) int {
		c := compare(a.Score, b.Score)
		if higherIsBetter {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.EntityID, b.EntityID)
	})
	competition(results, func(r Result) float64 { return r.Score })
}
