package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/yield"
	"github.com/etnz/yield/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type volatilityCmd struct {
	classification
	out    output
	months int
}

func (*volatilityCmd) Name() string     { return "volatility" }
func (*volatilityCmd) Synopsis() string { return "dividend volatility index of each ticker" }
func (*volatilityCmd) Usage() string {
	return `ycs volatility [-months <n>] [-policy <policy>] [-normalize <convention>] [-path <jsonpath>] [-json] [-xlsx <file>] [<file>]

  Classifies the dividend records of each ticker, and prints the coefficient
  of variation of the annualized Regular dividends paid during the trailing
  months, ending on the latest ex-date.
`
}

func (c *volatilityCmd) SetFlags(f *flag.FlagSet) {
	c.classification.register(f)
	c.out.register(f)
	f.IntVar(&c.months, "months", config.VolatilityMonths, "trailing window in months")
}

func (c *volatilityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -months=%d: %v\n", c.months, yield.ErrInvalidWindow)
		return subcommands.ExitUsageError
	}
	batches, status := c.classify(ctx, f.Arg(0))
	if status != subcommands.ExitSuccess {
		return status
	}
	rows := make([]renderer.VolatilityRow, 0, len(batches))
	for _, b := range batches {
		idx, err := yield.Volatility(b.Dividends, c.months)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing %q volatility: %v\n", b.Ticker, err)
			return subcommands.ExitFailure
		}
		if idx == nil {
			log.Warn().Str("ticker", b.Ticker).Int("months", c.months).Msg("no regular dividend in window")
		}
		rows = append(rows, renderer.VolatilityRow{Ticker: b.Ticker, Index: idx})
	}
	return c.out.emit(renderer.RenderVolatility(rows), rows, renderer.VolatilitySheet(rows))
}
