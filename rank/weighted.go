package rank

import (
	"slices"
	"strings"
)

// RankWeighted ranks entities on every metric (1 is the best, ties share a
// rank), and then by the weighted mean of those ranks. Lower scores are
// better.
type RankWeighted struct{}

func (RankWeighted) Name() string { return "rank-weighted" }

func (RankWeighted) Rank(entities []Entity, c Criteria) ([]Result, error) {
	results, _, err := Eligible(entities, c)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []Result{}, nil
	}
	metrics := c.Metrics()
	for i := range results {
		results[i].MetricRanks = make(map[string]int, len(metrics))
	}
	for _, m := range metrics {
		for id, r := range metricRanks(results, m, c.LowerIsBetter[m]) {
			results[id].MetricRanks[m] = r
		}
	}

	total := c.total()
	for i := range results {
		if total == 0 {
			continue
		}
		var sum float64
		for _, m := range metrics {
			sum += float64(results[i].MetricRanks[m]) * c.Weights[m] / total
		}
		results[i].Score = sum
	}
	order(results, false)
	return results, nil
}

// metricRanks returns the competition rank of every result (by index) on
// metric m.
func metricRanks(results []Result, m string, lowerIsBetter bool) map[int]int {
	idx := make([]int, len(results))
	for i := range idx {
		idx[i] = i
	}
	value := func(i int) float64 { return results[i].RawMetrics[m] }
	slices.SortStableFunc(idx, func(a, b int) int {
		c := compare(value(a), value(b))
		if !lowerIsBetter {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(results[a].EntityID, results[b].EntityID)
	})
	ranks := make(map[int]int, len(idx))
	for pos, i := range idx {
		if pos > 0 && equal(value(i), value(idx[pos-1])) {
			ranks[i] = ranks[idx[pos-1]]
			continue
		}
		ranks[i] = pos + 1
	}
	return ranks
}
