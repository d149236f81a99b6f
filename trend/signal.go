package trend

// Thresholds of the signal rating decision table.
//
// Value levels apply to the Z-score of the premium/discount, momentum uses the
// sign of the 6 and 12 month trends.
type Thresholds struct {
	DeeplyCheap     float64 // z <= DeeplyCheap
	Cheap           float64 // z <= Cheap
	Fair            float64 // |z| < Fair
	Expensive       float64 // z >= Expensive
	MinHistoryYears float64
}

// DefaultThresholds of the rating.
var DefaultThresholds = Thresholds{
	DeeplyCheap:     -1.5,
	Cheap:           -0.5,
	Fair:            0.5,
	Expensive:       1.5,
	MinHistoryYears: 2,
}

// Signal gathers the inputs of a rating.
type Signal struct {
	ZScore       *float64 `json:"z_score"`
	Trend6M      *float64 `json:"trend_6m"`
	Trend12M     *float64 `json:"trend_12m"`
	HistoryYears float64  `json:"history_years"`
}

// Rating bounds.
const (
	MinRating = -2
	MaxRating = 3
)

// Rate returns the signal rating of s using DefaultThresholds.
func Rate(s Signal) *int { return DefaultThresholds.Rate(s) }

// Rate returns the rating of s in [MinRating, MaxRating], or nil when the
// history is too short or the Z-score unknown. The first matching rule wins:
//
//	expensive                       -2
//	deeply cheap, strong momentum   +3
//	cheap, positive momentum        +2
//	cheap, shrinking                -1
//	fair, growing                   +1
//	otherwise                        0
//
// A missing trend never counts as momentum.
func (t Thresholds) Rate(s Signal) *int {
	if s.ZScore == nil || s.HistoryYears < t.MinHistoryYears {
		return nil
	}
	z := *s.ZScore
	up6, up12 := positive(s.Trend6M), positive(s.Trend12M)
	shrinking := negative(s.Trend6M) && negative(s.Trend12M)

	var r int
	switch {
	case z >= t.Expensive:
		r = -2
	case z <= t.DeeplyCheap && up6 && up12:
		r = 3
	case z <= t.Cheap && up6:
		r = 2
	case z <= t.Cheap && shrinking:
		r = -1
	case z > -t.Fair && z < t.Fair && up12:
		r = 1
	}
	return &r
}

func positive(v *float64) bool { return v != nil && *v > 0 }
func negative(v *float64) bool { return v != nil && *v < 0 }

// Assess computes the whole signal of a fund from its price and NAV series:
// the Z-score of the premium/discount over lb, and the 6 and 12 month trends
// of the price.
func Assess(prices, navs []PricePoint, lb Lookback) (Signal, *ZScore, error) {
	pd, err := PremiumDiscount(prices, navs)
	if err != nil {
		return Signal{}, nil, err
	}
	z := RollingZScore(pd, lb)
	s := Signal{HistoryYears: HistoryYears(prices)}
	if z != nil {
		s.ZScore = &z.Value
	}
	if s.Trend6M, err = percent(prices, SixMonths); err != nil {
		return Signal{}, nil, err
	}
	if s.Trend12M, err = percent(prices, TwelveMonths); err != nil {
		return Signal{}, nil, err
	}
	return s, z, nil
}

func percent(prices []PricePoint, w Window) (*float64, error) {
	r, err := CalendarTrend(prices, w)
	return r.PercentChange, err
}
