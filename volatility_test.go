package yield

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/yield/date"
	"github.com/shopspring/decimal"
)

// annualized returns a Regular dividend paid on day with the given annualized rate.
func annualized(day, rate string) Dividend {
	r := decimal.RequireFromString(rate)
	return Dividend{
		Observation: Observation{Ticker: "ABC", ExDate: date.MustParse(day), RawAmount: r},
		Type:        Regular,
		Frequency:   Annual,
		Annualized:  decimal.NewNullDecimal(r),
	}
}

func TestVolatility(t *testing.T) {
	divs := []Dividend{
		annualized("2024-01-31", "9.99"), // out of the window
		annualized("2024-06-30", "2.00"), // on the window start, excluded
		annualized("2024-09-30", "2"),
		annualized("2024-12-31", "4"),
		annualized("2025-03-31", "4"),
		annualized("2025-06-30", "6"),
	}
	v, err := Volatility(divs, 12)
	if err != nil {
		t.Fatalf("Volatility() error = %v", err)
	}
	if v.Payments != 4 {
		t.Errorf("Volatility().Payments = %d want 4", v.Payments)
	}
	if v.Mean != 4 {
		t.Errorf("Volatility().Mean = %v want 4", v.Mean)
	}
	if want := math.Sqrt(2); math.Abs(v.StdDev-want) > 1e-12 {
		t.Errorf("Volatility().StdDev = %v want %v", v.StdDev, want)
	}
	if want := Percent(math.Sqrt(2) / 4 * 100); v.CV == nil || math.Abs(float64(*v.CV-want)) > 1e-9 {
		t.Errorf("Volatility().CV = %v want %v", v.CV, want)
	}
	if v.Window.To != date.MustParse("2025-06-30") || v.Window.From != date.MustParse("2024-07-01") {
		t.Errorf("Volatility().Window = %v want 2024-07-01..2025-06-30", v.Window)
	}
}

// TestVolatilityFrequencyChange checks that a switch from monthly to weekly
// payments at the same annualized rate is not volatile.
func TestVolatilityFrequencyChange(t *testing.T) {
	divs := mustClassify(general, spaced("XYZ", "2024-07-01", "0.13", 30, 30, 30, 30))
	weekly := mustClassify(general, spaced("XYZ", "2024-12-01", "0.03", 7, 7, 7, 7))
	divs = append(divs, weekly[1:]...)
	// 0.13 x 12 == 0.03 x 52
	v, err := Volatility(divs, 12)
	if err != nil {
		t.Fatalf("Volatility() error = %v", err)
	}
	if v.CV == nil || *v.CV != 0 {
		t.Errorf("Volatility().CV = %v want 0", v.CV)
	}
}

// TestVolatilityStable checks that identical rates have a zero CV, whatever
// the rounding of their mean.
func TestVolatilityStable(t *testing.T) {
	divs := mustClassify(general, spaced("PDI", "2024-01-12", "0.1234", 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30))
	v, err := Volatility(divs, 12)
	if err != nil {
		t.Fatalf("Volatility() error = %v", err)
	}
	if v == nil || v.StdDev != 0 || v.CV == nil || *v.CV != 0 {
		t.Errorf("Volatility(12 x 0.1234 monthly) = %+v want a zero CV", v)
	}
}

func TestVolatilityInsufficient(t *testing.T) {
	testCases := []struct {
		name string
		divs []Dividend
	}{
		{"empty", nil},
		{"initial only", mustClassify(cef, spaced("ABC", "2024-02-01", "0.10"))},
		{"specials only", []Dividend{{Observation: Observation{Ticker: "ABC", ExDate: date.MustParse("2025-01-01")}, Type: Special}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Volatility(tc.divs, 12)
			if err != nil || v != nil {
				t.Errorf("Volatility() = %v, %v want nil, nil", v, err)
			}
		})
	}
}

func TestVolatilityZeroMean(t *testing.T) {
	v, err := Volatility([]Dividend{annualized("2025-01-31", "0"), annualized("2025-02-28", "0")}, 12)
	if err != nil {
		t.Fatalf("Volatility() error = %v", err)
	}
	if v == nil || v.CV != nil {
		t.Errorf("Volatility() = %v want a nil CV", v)
	}
}

func TestVolatilityMalformed(t *testing.T) {
	if _, err := Volatility(nil, 0); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("Volatility(nil, 0) error = %v want %v", err, ErrInvalidWindow)
	}
	divs := []Dividend{annualized("2025-02-28", "1"), annualized("2025-01-31", "1")}
	if _, err := Volatility(divs, 12); !errors.Is(err, ErrUnordered) {
		t.Errorf("Volatility(unordered) error = %v want %v", err, ErrUnordered)
	}
}
