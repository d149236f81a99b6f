package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/yield/renderer"
	"github.com/etnz/yield/trend"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type trendCmd struct {
	out     output
	windows string
	path    string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "calendar month price trends" }
func (*trendCmd) Usage() string {
	return `ycs trend [-window <windows>] [-path <jsonpath>] [-json] [-xlsx <file>] <file>...

  Reads the price history of a ticker per file (named after the file), and
  prints the percent change of the adjusted close over each window, anchored
  on the latest price. Windows are 6M, 12M, 3Y, 5Y, 10Y, 15Y or <n>M.

  Records are {"date", "close", "adjusted_close"}.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	c.out.register(f)
	f.StringVar(&c.windows, "window", "6M,12M", "comma separated trend windows")
	f.StringVar(&c.path, "path", "", "JSONPath of the records in the input document (e.g. $.prices)")
}

// parseWindows parses a comma separated list of windows.
func parseWindows(s string) ([]trend.Window, error) {
	var windows []trend.Window
	for _, name := range strings.Split(s, ",") {
		w, err := trend.ParseWindow(name)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	windows, err := parseWindows(c.windows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	files := f.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	table := renderer.TrendTable{Windows: windows}
	for _, file := range files {
		ticker := tickerOf(file)
		prices, err := decodePrices(file, c.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading prices: %v\n", err)
			return subcommands.ExitFailure
		}
		results, err := trend.Trends(prices, windows...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing %q trends: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		for _, r := range results {
			if r.PercentChange == nil {
				log.Warn().Str("ticker", ticker).Stringer("window", r.Window).Stringer("reference", r.Reference).Msg("insufficient history")
			}
		}
		table.Rows = append(table.Rows, renderer.TrendRow{Ticker: ticker, Results: results})
	}
	return c.out.emit(renderer.RenderTrends(table), table.Rows, renderer.TrendSheet(table))
}
