package yield

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Batch is the classified history of one ticker.
type Batch struct {
	Ticker    string     `json:"ticker"`
	Dividends []Dividend `json:"dividends"`
}

// GroupByTicker partitions obs by ticker, keeping their relative order.
// Tickers are returned sorted.
func GroupByTicker(obs []Observation) ([]string, map[string][]Observation) {
	groups := make(map[string][]Observation)
	for _, o := range obs {
		groups[o.Ticker] = append(groups[o.Ticker], o)
	}
	tickers := make([]string, 0, len(groups))
	for t := range groups {
		tickers = append(tickers, t)
	}
	slices.Sort(tickers)
	return tickers, groups
}

// ClassifyAll classifies the observations of many tickers, at most workers
// tickers at a time (no limit when workers <= 0).
//
// Batches are returned in ticker order. The first error cancels the tickers
// not yet started and is returned.
func ClassifyAll(ctx context.Context, c Classifier, obs []Observation, workers int) ([]Batch, error) {
	tickers, groups := GroupByTicker(obs)
	batches := make([]Batch, len(tickers))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, ticker := range tickers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			divs, err := c.Classify(groups[ticker])
			if err != nil {
				return fmt.Errorf("cannot classify %q: %w", ticker, err)
			}
			batches[i] = Batch{Ticker: ticker, Dividends: divs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batches, nil
}
