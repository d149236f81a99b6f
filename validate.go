package yield

import (
	"errors"
	"fmt"
)

// Contract violations of the caller.
var (
	// ErrUnordered indicates that observations are not in ascending ex-date order.
	ErrUnordered = errors.New("observations not in ascending ex-date order")

	// ErrDuplicateDate indicates two observations of a ticker on the same ex-date.
	ErrDuplicateDate = errors.New("duplicate ex-date")

	// ErrMixedTicker indicates that a ticker scoped call received several tickers.
	ErrMixedTicker = errors.New("observations span several tickers")

	// ErrNegativeAmount indicates a dividend with a negative amount.
	ErrNegativeAmount = errors.New("negative dividend amount")

	// ErrMissingDate indicates an observation without ex-date.
	ErrMissingDate = errors.New("missing ex-date")
)

// Validate checks that obs is the history of a single ticker, in strictly
// ascending ex-date order with non negative amounts.
func Validate(obs []Observation) error {
	for i, o := range obs {
		if o.ExDate.IsZero() {
			return fmt.Errorf("observation %q of %q: %w", o.ID, o.Ticker, ErrMissingDate)
		}
		if o.RawAmount.IsNegative() || o.Amount().IsNegative() {
			return fmt.Errorf("observation %q of %q on %s: %w", o.ID, o.Ticker, o.ExDate, ErrNegativeAmount)
		}
		if i == 0 {
			continue
		}
		prev := obs[i-1]
		if o.Ticker != prev.Ticker {
			return fmt.Errorf("%q after %q: %w", o.Ticker, prev.Ticker, ErrMixedTicker)
		}
		switch o.ExDate.Compare(prev.ExDate) {
		case 0:
			return fmt.Errorf("%q on %s: %w", o.Ticker, o.ExDate, ErrDuplicateDate)
		case -1:
			return fmt.Errorf("%q on %s after %s: %w", o.Ticker, o.ExDate, prev.ExDate, ErrUnordered)
		}
	}
	return nil
}
