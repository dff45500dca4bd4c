package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/ledgerfmt"
	"github.com/etnz/ledgerfmt/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// ledgerPredictor completes ledger file names and directories.
var ledgerPredictor = ledgerFiles()

func ledgerFiles() complete.Predictor {
	var ps []complete.Predictor
	for _, ext := range ledgerfmt.Extensions {
		ps = append(ps, predict.Files("*"+ext))
	}
	return predict.Or(ps...)
}

// Completion returns the shell completion tree of lfmt: subcommands, their
// flags and the ledger files or topics they accept.
//
// It is installed by running lfmt with COMP_INSTALL=1.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f), Args: ledgerPredictor}
	}
	root.Sub["serve"].Args = predict.Nothing
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case isBoolFlag(fl):
			flags[fl.Name] = predict.Nothing
		case fl.Name == "ledger-file":
			flags[fl.Name] = ledgerPredictor
		case strings.HasSuffix(fl.Name, "config"):
			flags[fl.Name] = predict.Files("*.yaml")
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
