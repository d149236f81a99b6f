package trend

import (
	"fmt"
	"math"

	"github.com/etnz/yield/date"
)

// onOrAfterTolerance is the number of days a reference record may follow the
// target date (weekends and holidays).
const onOrAfterTolerance = 7

// Sanity bounds of a percent change, results outside are rejected.
const (
	minPercentChange = -99
	maxPercentChange = 10000
)

// Result is a percent change between a reference record and the latest one.
type Result struct {
	Window        Window    `json:"window"`
	PercentChange *float64  `json:"percent_change"` // nil for insufficient or out of tolerance history
	AsOf          date.Date `json:"as_of_date"`
	Reference     date.Date `json:"reference_date"`
}

// CalendarTrend returns the percent change of the adjusted close over w
// calendar months, anchored on the latest record of prices rather than today
// so that a stale feed gives a consistent result.
//
// The reference record is the first one on or after the target date (if
// within a week), else the last one before it. The result is nil if the
// reference is not within w.Band() of the latest record.
func CalendarTrend(prices []PricePoint, w Window) (Result, error) {
	if w.Months <= 0 {
		return Result{}, fmt.Errorf("trend over %d months: %w", w.Months, ErrInvalidWindow)
	}
	if err := Validate(prices); err != nil {
		return Result{}, err
	}
	res := Result{Window: w}
	if len(prices) == 0 {
		return res, nil
	}
	h := History(prices)
	latest, current := h.Latest()
	res.AsOf = latest

	ref, past := reference(h, latest.AddMonth(-w.Months))
	res.Reference = ref

	lo, hi := w.Band()
	if distance := latest.MonthsSince(ref); distance < lo || distance > hi {
		return res, nil
	}
	res.PercentChange = percentChange(past, current)
	return res, nil
}

// Trends returns CalendarTrend for every window.
func Trends(prices []PricePoint, windows ...Window) ([]Result, error) {
	results := make([]Result, 0, len(windows))
	for _, w := range windows {
		r, err := CalendarTrend(prices, w)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// reference selects the reference record for target in a non empty series.
func reference(h *date.History[float64], target date.Date) (date.Date, float64) {
	if day, v, ok := h.ValueOnOrAfter(target); ok && day.DaysSince(target) <= onOrAfterTolerance {
		return day, v
	}
	if day, v, ok := h.ValueAsOf(target); ok {
		return day, v
	}
	// the whole history is after the target
	return h.Earliest()
}

// percentChange returns the change from past to current in percent, or nil
// when it is not a sane value.
func percentChange(past, current float64) *float64 {
	if past <= 0 {
		return nil
	}
	pct := (current - past) / past * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < minPercentChange || pct > maxPercentChange {
		return nil
	}
	return &pct
}
