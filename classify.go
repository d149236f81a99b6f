package yield

// Classifier turns the dividend history of a ticker into classified and
// annualized dividends.
//
// The zero value uses the General policy and the WeeklyRate normalization.
type Classifier struct {
	Policy     Policy
	Normalizer Normalizer
}

// Classify classifies obs, the full history of a single ticker in ascending
// ex-date order. The result is one-to-one with obs.
//
// A malformed history (several tickers, misordered or duplicate ex-dates,
// negative amounts) is reported as an error wrapping one of the Err
// variables of this package.
func (c Classifier) Classify(obs []Observation) ([]Dividend, error) {
	if err := Validate(obs); err != nil {
		return nil, err
	}
	policy, normalizer := c.Policy, c.Normalizer
	if policy == nil {
		policy = General
	}
	if normalizer == nil {
		normalizer = WeeklyRate{}
	}

	divs := make([]Dividend, len(obs))
	for i, o := range obs {
		d := Dividend{Observation: o, Type: Initial}
		if i > 0 {
			days := o.ExDate.DaysSince(obs[i-1].ExDate)
			d.DaysSincePrev = &days
			d.Type = policy.Type(divs[:i], o, days)
		}
		divs[i] = d
	}
	confirmFrequencies(divs)
	for i := range divs {
		divs[i] = Annualize(divs[i], normalizer)
	}
	return divs, nil
}
