package rank

// Composite ranks entities by the weighted mean of their min-max normalized
// metrics. Higher scores are better.
//
// A metric whose values are all equal normalizes to 0.5 for everyone. Lower
// is better metrics are inverted so that 1 is always the best. The score is 0
// when weights sum to 0.
type Composite struct{}

func (Composite) Name() string { return "composite" }

func (Composite) Rank(entities []Entity, c Criteria) ([]Result, error) {
	results, _, err := Eligible(entities, c)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []Result{}, nil
	}
	metrics := c.Metrics()
	for i := range results {
		results[i].NormalizedScores = make(map[string]float64, len(metrics))
	}
	for _, m := range metrics {
		lo, hi := bounds(results, m)
		for i := range results {
			n := 0.5
			if !equal(lo, hi) {
				n = (results[i].RawMetrics[m] - lo) / (hi - lo)
			}
			if c.LowerIsBetter[m] {
				n = 1 - n
			}
			results[i].NormalizedScores[m] = n
		}
	}

	total := c.total()
	for i := range results {
		if total == 0 {
			continue
		}
		var sum float64
		for _, m := range metrics {
			sum += results[i].NormalizedScores[m] * c.Weights[m]
		}
		results[i].Score = sum / total
	}
	order(results, true)
	return results, nil
}

// bounds returns the min and max of metric m.
func bounds(results []Result, m string) (lo, hi float64) {
	lo, hi = results[0].RawMetrics[m], results[0].RawMetrics[m]
	for _, r := range results[1:] {
		lo, hi = min(lo, r.RawMetrics[m]), max(hi, r.RawMetrics[m])
	}
	return lo, hi
}
