// Package cmd implements the ycs subcommands, running the dividend and price
// analytics over JSON records.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/yield/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	Verbose  = flag.Bool("v", false, "verbose logging")
	envFile  = flag.String("env", ".env", "file of environment variables to load before the configuration")
	style    = flag.String("style", "", "style of the terminal reports (auto, dark, light, notty or a glamour JSON style file), defaults to $YIELD_STYLE")
	markdown = flag.Bool("md", false, "print reports as raw markdown")
)

// Commands lists the ycs subcommands.
var Commands = []subcommands.Command{
	&classifyCmd{},
	&volatilityCmd{},
	&trendCmd{},
	&zscoreCmd{},
	&rankCmd{},
}

// IsCommand reports whether name is one of Commands.
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// config holds the flag defaults, it is loaded by Setup.
var config = Config{
	Policy:           "cef",
	Normalization:    "weekly",
	VolatilityMonths: 12,
	Workers:          4,
	LogLevel:         "info",
	Style:            "auto",
}

// stdout receives the output of commands.
var stdout io.Writer = os.Stdout

// Setup loads the configuration and sets up logging. It must be called once
// the global flags are parsed.
func Setup() error {
	c, err := LoadConfig(*envFile)
	if err != nil {
		return err
	}
	config = c
	return setupLogger(config.LogLevel, *Verbose)
}

// output holds the output flags common to all commands.
type output struct {
	json bool
	xlsx string
}

func (o *output) register(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "print results as JSON instead of a report")
	f.StringVar(&o.xlsx, "xlsx", "", "also export results to this XLSX workbook")
}

// emit writes sheets to the workbook if requested, then prints v as JSON or
// md as a report.
func (o *output) emit(md string, v any, sheets ...renderer.Sheet) subcommands.ExitStatus {
	if o.xlsx != "" {
		if err := writeWorkbook(o.xlsx, sheets...); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing workbook %q: %v\n", o.xlsx, err)
			return subcommands.ExitFailure
		}
		log.Info().Str("file", o.xlsx).Int("sheets", len(sheets)).Msg("workbook written")
	}
	if o.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding results: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

func writeWorkbook(name string, sheets ...renderer.Sheet) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := renderer.WriteWorkbook(f, sheets...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printMarkdown renders md for the terminal, or prints it raw when -md is set
// or the output is not the standard output.
func printMarkdown(md string) {
	if *markdown || stdout != io.Writer(os.Stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	s := *style
	if s == "" {
		s = config.Style
	}
	opt := glamour.WithAutoStyle()
	if s != "auto" {
		opt = glamour.WithStylePath(s)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Warn().Err(err).Str("style", s).Msg("cannot render report, printing markdown")
	fmt.Fprint(stdout, md)
}
