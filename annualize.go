package yield

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var weeksPerYear = decimal.NewFromInt(52)

// Normalizer computes the weekly normalized rate of an annualized Regular
// dividend, so that weekly and monthly payers compare on one axis.
//
// Both conventions in use are available by name.
type Normalizer interface {
	Name() string
	Normalize(d Dividend) decimal.Decimal
}

// WeeklyRate is the annualized rate divided by 52, whatever the frequency.
type WeeklyRate struct{}

func (WeeklyRate) Name() string { return "weekly" }

func (WeeklyRate) Normalize(d Dividend) decimal.Decimal {
	return d.Annualized.Decimal.Div(weeksPerYear)
}

// MonthlyPassThrough keeps the split adjusted amount of monthly payers
// unchanged, other frequencies are normalized as WeeklyRate.
type MonthlyPassThrough struct{}

func (MonthlyPassThrough) Name() string { return "monthly-passthrough" }

func (MonthlyPassThrough) Normalize(d Dividend) decimal.Decimal {
	if d.Frequency == Monthly {
		return d.Amount()
	}
	return WeeklyRate{}.Normalize(d)
}

// ParseNormalizer returns the normalizer by name ("weekly" or "monthly-passthrough").
func ParseNormalizer(name string) (Normalizer, error) {
	switch strings.ToLower(name) {
	case "weekly":
		return WeeklyRate{}, nil
	case "monthly-passthrough", "passthrough":
		return MonthlyPassThrough{}, nil
	default:
		return nil, fmt.Errorf("unknown normalization %q", name)
	}
}

// Annualize returns d with its annualized and normalized rates computed from
// its own amount and frequency. They are null unless d is Regular with a
// known frequency.
func Annualize(d Dividend, n Normalizer) Dividend {
	d.Annualized, d.NormalizedWeekly = decimal.NullDecimal{}, decimal.NullDecimal{}
	if d.Type != Regular || d.Frequency == Unknown {
		return d
	}
	d.Annualized = decimal.NewNullDecimal(d.Amount().Mul(decimal.NewFromInt(int64(d.Frequency))))
	d.NormalizedWeekly = decimal.NewNullDecimal(n.Normalize(d))
	return d
}
