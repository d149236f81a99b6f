package yield

import (
	"errors"
	"fmt"

	"github.com/etnz/yield/date"
	"github.com/etnz/yield/stat"
)

// ErrInvalidWindow indicates a non positive volatility window.
var ErrInvalidWindow = errors.New("window must be a positive number of months")

// VolatilityIndex is the dividend stability of a ticker over a trailing window.
type VolatilityIndex struct {
	Window   date.Range `json:"window"`
	Payments int        `json:"payments"`
	Mean     float64    `json:"mean"`
	StdDev   float64    `json:"standard_deviation"`
	CV       *Percent   `json:"coefficient_of_variation_percent"` // nil when the mean is zero
}

// Volatility computes the coefficient of variation of the annualized rates of
// the Regular dividends paid during the months trailing the latest ex-date.
//
// It returns nil when no Regular dividend falls in the window.
func Volatility(divs []Dividend, months int) (*VolatilityIndex, error) {
	if months <= 0 {
		return nil, fmt.Errorf("volatility over %d months: %w", months, ErrInvalidWindow)
	}
	obs := make([]Observation, len(divs))
	for i, d := range divs {
		obs[i] = d.Observation
	}
	if err := Validate(obs); err != nil {
		return nil, err
	}
	if len(divs) == 0 {
		return nil, nil
	}

	latest := divs[len(divs)-1].ExDate
	// the day months before the latest belongs to the previous window: a 12
	// months window holds 12 monthly payments.
	window := date.Trailing(latest, months)
	window.From = window.From.Add(1)
	var rates []float64
	for _, d := range divs {
		if !d.IsRegular() || !d.Annualized.Valid || !window.Contains(d.ExDate) {
			continue
		}
		rates = append(rates, d.Annualized.Decimal.InexactFloat64())
	}
	if len(rates) == 0 {
		return nil, nil
	}
	v := &VolatilityIndex{
		Window:   window,
		Payments: len(rates),
		Mean:     stat.Mean(rates),
	}
	v.StdDev = stat.StdDev(rates, v.Mean)
	if v.Mean != 0 {
		cv := Percent(v.StdDev / v.Mean * 100)
		v.CV = &cv
	}
	return v, nil
}
