package trend

import (
	"github.com/etnz/yield/date"
	"github.com/etnz/yield/stat"
)

// TradingDaysPerYear is the number of observations making one year of history.
const TradingDaysPerYear = 252

// Lookback bounds the history used by RollingZScore.
type Lookback struct {
	MaxYears int // calendar years trailing the latest observation
	MinYears int // required history, in TradingDaysPerYear observations
}

// DefaultLookback uses up to 3 years and requires 1.
var DefaultLookback = Lookback{MaxYears: 3, MinYears: 1}

// ZScore is the standardized deviation of the latest observation of a series
// from its trailing mean.
type ZScore struct {
	Value   float64    `json:"z_score"`
	Current float64    `json:"current"`
	Mean    float64    `json:"mean"`
	StdDev  float64    `json:"standard_deviation"`
	Points  int        `json:"data_points"`
	Window  date.Range `json:"window"`
}

// PremiumDiscount returns price/NAV - 1 on every day where both the price and
// the NAV closes are known and positive.
func PremiumDiscount(prices, navs []PricePoint) (*date.History[float64], error) {
	if err := Validate(prices); err != nil {
		return nil, err
	}
	if err := Validate(navs); err != nil {
		return nil, err
	}
	nav := closes(navs)
	pd := new(date.History[float64])
	for day, price := range closes(prices).Values() {
		if n, ok := nav.Get(day); ok {
			pd.Append(day, price/n-1)
		}
	}
	return pd, nil
}

// RollingZScore computes (current - mean) / stddev over the observations of
// series within lb.MaxYears calendar years of the latest one, bounds
// included. The deviation is the population one.
//
// It returns nil unless the window holds at least lb.MinYears years of
// trading days. A flat series has a zero Z-score.
func RollingZScore(series *date.History[float64], lb Lookback) *ZScore {
	if series == nil || series.Len() == 0 {
		return nil
	}
	end, current := series.Latest()
	window := date.Range{From: end.AddYear(-lb.MaxYears), To: end}

	values := make([]float64, 0, series.Len())
	for _, v := range series.Between(window) {
		values = append(values, v)
	}
	if len(values) < lb.MinYears*TradingDaysPerYear || len(values) == 0 {
		return nil
	}

	z := &ZScore{
		Current: current,
		Mean:    stat.Mean(values),
		Points:  len(values),
		Window:  window,
	}
	z.StdDev = stat.StdDev(values, z.Mean)
	if z.StdDev != 0 {
		z.Value = (current - z.Mean) / z.StdDev
	}
	return z
}
