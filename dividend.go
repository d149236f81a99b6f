package yield

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentType classifies a dividend payment.
type PaymentType string

const (
	Initial PaymentType = "Initial" // first recorded payment of a ticker
	Regular PaymentType = "Regular" // part of the recurring cadence
	Special PaymentType = "Special" // one-off, irregular or year-end distribution
)

// Frequency is the number of payments per year of a Regular dividend.
// The zero value means the frequency is unknown.
type Frequency int

const (
	Unknown    Frequency = 0
	Annual     Frequency = 1
	SemiAnnual Frequency = 2
	Quarterly  Frequency = 4
	Monthly    Frequency = 12
	Weekly     Frequency = 52
)

func (f Frequency) String() string {
	switch f {
	case Unknown:
		return "-"
	case Annual:
		return "annual"
	case SemiAnnual:
		return "semi-annual"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	case Weekly:
		return "weekly"
	default:
		return fmt.Sprintf("%d/year", int(f))
	}
}

// MarshalJSON encodes the payments per year, or null when unknown.
func (f Frequency) MarshalJSON() ([]byte, error) {
	if f == Unknown {
		return []byte("null"), nil
	}
	return json.Marshal(int(f))
}

func (f *Frequency) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Unknown
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = Frequency(n)
	return nil
}

// Dividend is a classified Observation.
//
// DaysSincePrev is nil iff the dividend is the Initial one. Frequency,
// Annualized and NormalizedWeekly are only set on Regular dividends.
type Dividend struct {
	Observation
	DaysSincePrev    *int                `json:"days_since_prev"`
	Type             PaymentType         `json:"payment_type"`
	Frequency        Frequency           `json:"frequency"`
	Annualized       decimal.NullDecimal `json:"annualized"`
	NormalizedWeekly decimal.NullDecimal `json:"normalized_weekly"`
}

// IsRegular reports whether the dividend is part of the recurring cadence.
func (d Dividend) IsRegular() bool { return d.Type == Regular }
