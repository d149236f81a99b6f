package yield

import (
	"fmt"

	"github.com/etnz/yield/date"
	"github.com/shopspring/decimal"
)

// spaced returns the history of ticker starting on start, with one payment
// of amount per gap, plus the initial one.
func spaced(ticker, start, amount string, gaps ...int) []Observation {
	on := date.MustParse(start)
	obs := []Observation{newObservation(ticker, on, amount)}
	for _, gap := range gaps {
		on = on.Add(gap)
		obs = append(obs, newObservation(ticker, on, amount))
	}
	return obs
}

// dated returns the history of ticker from "date=amount" entries.
func dated(ticker string, entries ...string) []Observation {
	obs := make([]Observation, 0, len(entries))
	for _, e := range entries {
		var day, amount string
		for i := range e {
			if e[i] == '=' {
				day, amount = e[:i], e[i+1:]
				break
			}
		}
		obs = append(obs, newObservation(ticker, date.MustParse(day), amount))
	}
	return obs
}

func newObservation(ticker string, on date.Date, amount string) Observation {
	a := decimal.RequireFromString(amount)
	return Observation{
		ID:            fmt.Sprintf("%s-%s", ticker, on),
		Ticker:        ticker,
		ExDate:        on,
		RawAmount:     a,
		SplitAdjusted: decimal.NewNullDecimal(a),
	}
}

// types returns the payment types of divs.
func types(divs []Dividend) []PaymentType {
	res := make([]PaymentType, len(divs))
	for i, d := range divs {
		res[i] = d.Type
	}
	return res
}

// frequencies returns the frequencies of divs.
func frequencies(divs []Dividend) []Frequency {
	res := make([]Frequency, len(divs))
	for i, d := range divs {
		res[i] = d.Frequency
	}
	return res
}

func mustClassify(c Classifier, obs []Observation) []Dividend {
	divs, err := c.Classify(obs)
	if err != nil {
		panic(err)
	}
	return divs
}
