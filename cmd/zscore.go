package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/yield/renderer"
	"github.com/etnz/yield/trend"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type zscoreCmd struct {
	out      output
	prices   string
	nav      string
	path     string
	ticker   string
	maxYears int
	minYears int
}

func (*zscoreCmd) Name() string     { return "zscore" }
func (*zscoreCmd) Synopsis() string { return "premium/discount Z-score and signal rating of a fund" }
func (*zscoreCmd) Usage() string {
	return `ycs zscore -prices <file> -nav <file> [-ticker <ticker>] [-max-years <n>] [-min-years <n>] [-path <jsonpath>] [-json] [-xlsx <file>]

  Reads the market price and the net asset value histories of a fund, and
  prints the Z-score of its latest premium/discount over the trailing years,
  along with its 6 and 12 month price trends and the resulting signal rating,
  from -2 (expensive) to +3 (deeply cheap with strong momentum).
`
}

func (c *zscoreCmd) SetFlags(f *flag.FlagSet) {
	c.out.register(f)
	f.StringVar(&c.prices, "prices", "", "market price history file")
	f.StringVar(&c.nav, "nav", "", "net asset value history file")
	f.StringVar(&c.ticker, "ticker", "", "fund ticker, defaults to the prices file name")
	f.IntVar(&c.maxYears, "max-years", trend.DefaultLookback.MaxYears, "years of history used at most")
	f.IntVar(&c.minYears, "min-years", trend.DefaultLookback.MinYears, "years of history required")
	f.StringVar(&c.path, "path", "", "JSONPath of the records in the input documents")
}

func (c *zscoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.prices == "" || c.nav == "" {
		fmt.Fprintln(os.Stderr, "-prices and -nav are both required")
		return subcommands.ExitUsageError
	}
	if c.maxYears <= 0 || c.minYears < 0 || c.minYears > c.maxYears {
		fmt.Fprintf(os.Stderr, "invalid lookback: -min-years=%d -max-years=%d\n", c.minYears, c.maxYears)
		return subcommands.ExitUsageError
	}
	if c.ticker == "" {
		c.ticker = tickerOf(c.prices)
	}

	prices, err := decodePrices(c.prices, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading prices: %v\n", err)
		return subcommands.ExitFailure
	}
	navs, err := decodePrices(c.nav, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading NAV: %v\n", err)
		return subcommands.ExitFailure
	}

	s, z, err := trend.Assess(prices, navs, trend.Lookback{MaxYears: c.maxYears, MinYears: c.minYears})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing %q signal: %v\n", c.ticker, err)
		return subcommands.ExitFailure
	}
	if z == nil {
		log.Warn().Str("ticker", c.ticker).Int("min_years", c.minYears).Msg("not enough premium/discount history")
	} else {
		log.Debug().Str("ticker", c.ticker).Int("points", z.Points).Float64("z", z.Value).Msg("z-score")
	}

	report := renderer.SignalReport{Ticker: c.ticker, Signal: s, ZScore: z, Rating: trend.Rate(s)}
	return c.out.emit(renderer.RenderSignal(report), report, renderer.SignalSheet([]renderer.SignalReport{report}))
}
