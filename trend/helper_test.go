package trend

import (
	"math"

	"github.com/etnz/yield/date"
)

// prices builds a series from "date=close" pairs.
func prices(pairs ...any) []PricePoint {
	var ps []PricePoint
	for i := 0; i < len(pairs); i += 2 {
		ps = append(ps, PricePoint{Date: date.MustParse(pairs[i].(string)), Close: pairs[i+1].(float64)})
	}
	return ps
}

func ptr(v float64) *float64 { return &v }

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return near(*a, *b)
}

func fmtPtr(v *float64) any {
	if v == nil {
		return "nil"
	}
	return *v
}
