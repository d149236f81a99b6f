package yield

import (
	"github.com/etnz/yield/date"
	"github.com/shopspring/decimal"
)

// Observation is a dividend as recorded by the market data provider.
type Observation struct {
	ID            string              `json:"id"`
	Ticker        string              `json:"ticker" validate:"required"`
	ExDate        date.Date           `json:"ex_date"`
	RawAmount     decimal.Decimal     `json:"raw_amount"`
	SplitAdjusted decimal.NullDecimal `json:"split_adjusted_amount"` // null when the provider has no split adjustment
}

// Amount returns the split adjusted amount, or the raw amount when no
// adjustment is known.
func (o Observation) Amount() decimal.Decimal {
	if o.SplitAdjusted.Valid {
		return o.SplitAdjusted.Decimal
	}
	return o.RawAmount
}
