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

// classification holds the flags selecting how dividends are classified.
type classification struct {
	policy    string
	normalize string
	workers   int
	path      string
}

func (c *classification) register(f *flag.FlagSet) {
	f.StringVar(&c.policy, "policy", config.Policy, "special dividend detection policy (general, cef)")
	f.StringVar(&c.normalize, "normalize", config.Normalization, "weekly normalization convention (weekly, monthly-passthrough)")
	f.IntVar(&c.workers, "workers", config.Workers, "number of tickers classified concurrently")
	f.StringVar(&c.path, "path", "", "JSONPath of the records in the input document (e.g. $.data)")
}

// classify decodes the observations in file and classifies them per ticker.
func (c *classification) classify(ctx context.Context, file string) ([]yield.Batch, subcommands.ExitStatus) {
	classifier, err := newClassifier(c.policy, c.normalize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	obs, err := decodeObservations(file, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading dividends: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	log.Debug().Int("observations", len(obs)).Str("policy", classifier.Policy.Name()).Str("normalization", classifier.Normalizer.Name()).Int("workers", c.workers).Msg("classifying")

	batches, err := yield.ClassifyAll(ctx, classifier, obs, c.workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error classifying dividends: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	for _, b := range batches {
		log.Debug().Str("ticker", b.Ticker).Int("dividends", len(b.Dividends)).Msg("classified")
	}
	return batches, subcommands.ExitSuccess
}

type classifyCmd struct {
	classification
	out output
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "classify dividends and compute their annualized rates" }
func (*classifyCmd) Usage() string {
	return `ycs classify [-policy <policy>] [-normalize <convention>] [-workers <n>] [-path <jsonpath>] [-json] [-xlsx <file>] [<file>]

  Reads dividend records (JSON array or JSONL, standard input by default) of
  one or more tickers, and prints for each one its payment type (Initial,
  Regular, Special), frequency, annualized and weekly normalized rates.

  Records are {"id", "ticker", "ex_date", "raw_amount", "split_adjusted_amount"}.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	c.classification.register(f)
	c.out.register(f)
}

func (c *classifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "classify takes at most one file")
		return subcommands.ExitUsageError
	}
	batches, status := c.classify(ctx, f.Arg(0))
	if status != subcommands.ExitSuccess {
		return status
	}
	var divs []yield.Dividend
	for _, b := range batches {
		divs = append(divs, b.Dividends...)
	}
	return c.out.emit(renderer.RenderDividends(batches), divs, renderer.DividendSheet(batches))
}
