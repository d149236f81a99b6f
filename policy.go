package yield

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/yield/stat"
	"github.com/shopspring/decimal"
)

// Policy decides whether a payment that follows the previous one by gap days
// is Regular or Special.
//
// history holds the already classified dividends of the ticker, oldest
// first. It is never empty: the first payment is always Initial.
type Policy interface {
	Name() string
	Type(history []Dividend, obs Observation, gap int) PaymentType
}

// GeneralPolicy flags any payment close to the previous one as Special.
type GeneralPolicy struct {
	MaxSpecialGap int // gaps up to this number of days are Special
}

// General is the general purpose policy: a payment within 5 days of the
// previous one is Special.
var General = GeneralPolicy{MaxSpecialGap: 5}

func (GeneralPolicy) Name() string { return "general" }

func (p GeneralPolicy) Type(_ []Dividend, _ Observation, gap int) PaymentType {
	if gap <= p.MaxSpecialGap {
		return Special
	}
	return Regular
}

// CEFPolicy is the closed-end fund aware policy.
//
// A payment is Special when it is both off-cadence (gap below OffCadenceGap)
// and larger than Multiple times the median of the last Lookback Regular or
// Special payments. An on-cadence payment is always Regular, except for a
// second payment in the same December with an amount that differs from the
// earlier non Special payment of that December: it is the usual year-end
// distribution.
type CEFPolicy struct {
	OffCadenceGap int
	Multiple      decimal.Decimal
	Lookback      int
}

// CEF is the closed-end fund policy as used by the reference spreadsheet.
var CEF = CEFPolicy{OffCadenceGap: 20, Multiple: decimal.NewFromInt(3), Lookback: 12}

func (CEFPolicy) Name() string { return "cef" }

func (p CEFPolicy) Type(history []Dividend, obs Observation, gap int) PaymentType {
	amount := obs.Amount()
	if prev, ok := sameDecember(history, obs); ok && !amount.Equal(prev.Amount()) {
		return Special
	}
	if gap >= p.OffCadenceGap {
		return Regular
	}
	if amount.GreaterThan(p.Multiple.Mul(trailingMedian(history, p.Lookback))) {
		return Special
	}
	return Regular
}

// sameDecember returns the latest non Special dividend of history paid in
// the same December as obs.
func sameDecember(history []Dividend, obs Observation) (Dividend, bool) {
	if obs.ExDate.Month() != time.December {
		return Dividend{}, false
	}
	for i := len(history) - 1; i >= 0; i-- {
		d := history[i]
		if d.ExDate.Month() != time.December || d.ExDate.Year() != obs.ExDate.Year() {
			break
		}
		if d.Type != Special {
			return d, true
		}
	}
	return Dividend{}, false
}

// trailingMedian is the median amount of the last n Regular or Special
// dividends in history. The Initial payment is used only when there is none.
func trailingMedian(history []Dividend, n int) decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, n)
	for i := len(history) - 1; i >= 0 && len(amounts) < n; i-- {
		if history[i].Type == Regular || history[i].Type == Special {
			amounts = append(amounts, history[i].Amount())
		}
	}
	if len(amounts) == 0 {
		for _, d := range history {
			amounts = append(amounts, d.Amount())
		}
	}
	return stat.Median(amounts)
}

// ParsePolicy returns the policy by name ("general" or "cef").
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "general":
		return General, nil
	case "cef":
		return CEF, nil
	default:
		return nil, fmt.Errorf("unknown classification policy %q", name)
	}
}
