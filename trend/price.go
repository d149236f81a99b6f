// Package trend computes price and NAV statistics anchored on the latest
// available record of a series: calendar month trends, the rolling Z-score
// of the premium/discount, and the combined signal rating.
//
// Insufficient or out of tolerance history is never an error: results carry
// nil values that callers display as "N/A".
package trend

import (
	"errors"
	"fmt"

	"github.com/etnz/yield/date"
)

var (
	// ErrUnordered indicates that price points are not in ascending date order.
	ErrUnordered = errors.New("price points not in ascending date order")

	// ErrDuplicateDate indicates two price points on the same day.
	ErrDuplicateDate = errors.New("duplicate price date")

	// ErrMissingDate indicates a price point without date.
	ErrMissingDate = errors.New("missing price date")

	// ErrInvalidWindow indicates a window that is not a positive number of months.
	ErrInvalidWindow = errors.New("invalid trend window")
)

// PricePoint is the closing price (or NAV) of a security on a trading day.
type PricePoint struct {
	Date          date.Date `json:"date"`
	Close         float64   `json:"close" validate:"gte=0"`
	AdjustedClose *float64  `json:"adjusted_close"` // nil when the provider has no adjusted price
}

// Value returns the adjusted close, or the close when there is none.
func (p PricePoint) Value() float64 {
	if p.AdjustedClose != nil {
		return *p.AdjustedClose
	}
	return p.Close
}

// History returns the series of the values (adjusted close) of prices.
func History(prices []PricePoint) *date.History[float64] {
	h := new(date.History[float64])
	for _, p := range prices {
		h.Append(p.Date, p.Value())
	}
	return h
}

// closes returns the series of the positive closes of prices.
func closes(prices []PricePoint) *date.History[float64] {
	h := new(date.History[float64])
	for _, p := range prices {
		if p.Close > 0 {
			h.Append(p.Date, p.Close)
		}
	}
	return h
}

// Validate checks that prices are in strictly ascending date order.
// Gaps (weekends, holidays) are expected.
func Validate(prices []PricePoint) error {
	for i, p := range prices {
		if p.Date.IsZero() {
			return fmt.Errorf("price point #%d: %w", i, ErrMissingDate)
		}
		if i == 0 {
			continue
		}
		switch p.Date.Compare(prices[i-1].Date) {
		case 0:
			return fmt.Errorf("price on %s: %w", p.Date, ErrDuplicateDate)
		case -1:
			return fmt.Errorf("price on %s after %s: %w", p.Date, prices[i-1].Date, ErrUnordered)
		}
	}
	return nil
}

// HistoryYears returns the time span covered by prices, in years.
func HistoryYears(prices []PricePoint) float64 {
	if len(prices) < 2 {
		return 0
	}
	return prices[len(prices)-1].Date.YearsSince(prices[0].Date)
}
