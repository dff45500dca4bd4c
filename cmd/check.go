package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerfmt"
	"github.com/google/subcommands"
)

type checkCmd struct {
	sort   bool
	column int
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "reports ledger files that are not formatted" }
func (*checkCmd) Usage() string {
	return `lfmt check [-sort] [-column <n>] [<file or dir>...]

  Checks that ledger files are formatted, without modifying them. It prints
  the name of every file that 'lfmt fmt' would change and exits with a
  failure status if there is any.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sort, "sort", *sortTxs, "Sort transactions by date")
	f.IntVar(&c.column, "column", *column, "Column of the decimal point of amounts")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	paths, err := ledgerPaths(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := ledgerfmt.Options{Sort: c.sort, Column: c.column}
	status := subcommands.ExitSuccess
	for _, path := range paths {
		text, err := ledgerfmt.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		_, changed, err := ledgerfmt.Format(text, opts)
		switch {
		case errors.Is(err, ledgerfmt.ErrContentChanged):
			fmt.Fprintf(os.Stderr, "Error: %s cannot be formatted safely: %v\n", path, err)
			status = subcommands.ExitFailure
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			status = subcommands.ExitFailure
		case changed:
			fmt.Printf("%s: not formatted\n", path)
			status = subcommands.ExitFailure
		default:
			logger.Debug("formatted", "file", path)
		}
	}
	return status
}
