package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors of flag values, by flag name. Other flags predict something.
var predictors = map[string]complete.Predictor{
	"policy":    predict.Set{"general", "cef"},
	"normalize": predict.Set{"weekly", "monthly-passthrough"},
	"strategy":  predict.Set{"composite", "rank-weighted"},
	"window":    predict.Set{"6M", "12M", "3Y", "5Y", "10Y", "15Y", "6M,12M"},
	"style":     predict.Set{"auto", "dark", "light", "notty"},
	"profile":   predict.Files("*.yaml"),
	"xlsx":      predict.Files("*.xlsx"),
	"prices":    predict.Files("*.json*"),
	"nav":       predict.Files("*.json*"),
	"env":       predict.Files("*"),
}

// Completion returns the shell completion of the global flags and commands.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(Commands)),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{
			Flags: flagPredictors(f),
			Args:  predict.Files("*.json*"),
		}
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch p, ok := predictors[fl.Name]; {
		case ok:
			m[fl.Name] = p
		case isBool(fl):
			m[fl.Name] = predict.Nothing
		default:
			m[fl.Name] = predict.Something
		}
	})
	return m
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
