package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/etnz/ledgerfmt"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	sort   bool
	column int
	list   bool
	diff   bool
	write  bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "aligns amounts, normalizes markers and optionally sorts ledger files"
}
func (*fmtCmd) Usage() string {
	return `lfmt fmt [-sort] [-column <n>] [-l] [-d] [-w] [<file or dir>...]

  Formats ledger files. Every posting is re-indented and its amount aligned on
  the decimal point, transaction markers are normalized and, with -sort,
  transactions are sorted by date. Comments are kept with the transaction
  that follows them.

  Files default to the -ledger-file global flag. Directories are searched for
  .ledger, .journal, .hledger and .dat files.

  By default the formatted ledger is printed to stdout.

Usage Examples:
# Print the formatted default ledger.
$ lfmt fmt

# Sort and rewrite every ledger of the books directory.
$ lfmt fmt -sort -w books/

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sort, "sort", *sortTxs, "Sort transactions by date")
	f.IntVar(&c.column, "column", *column, "Column of the decimal point of amounts")
	f.BoolVar(&c.list, "l", false, "List the files whose formatting differs")
	f.BoolVar(&c.diff, "d", false, "Print the transactions whose formatting differs")
	f.BoolVar(&c.write, "w", false, "Write the result to the file instead of stdout")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	paths, err := ledgerPaths(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(paths) == 0 {
		logger.Warn("no ledger files found")
		return subcommands.ExitSuccess
	}

	opts := ledgerfmt.Options{Sort: c.sort, Column: c.column}
	status := subcommands.ExitSuccess
	for _, path := range paths {
		if err := c.format(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", path, err)
			status = subcommands.ExitFailure
		}
	}
	return status
}

func (c *fmtCmd) format(path string, opts ledgerfmt.Options) error {
	text, err := ledgerfmt.LoadFile(path)
	if err != nil {
		return err
	}
	out, changed, err := ledgerfmt.Format(text, opts)
	if err != nil {
		return err
	}
	logger.Debug("formatted", "file", path, "changed", changed)

	if !c.list && !c.diff && !c.write {
		fmt.Print(out)
		return nil
	}
	if !changed {
		return nil
	}
	if c.list {
		fmt.Println(path)
	}
	if c.diff {
		printDiff(os.Stdout, path, text, opts)
	}
	if c.write {
		if err := ledgerfmt.SaveFile(path, out); err != nil {
			return err
		}
		logger.Debug("rewrote", "file", path)
	}
	return nil
}

var (
	diffHeader  = color.New(color.Bold)
	diffRange   = color.New(color.FgCyan)
	diffRemoved = color.New(color.FgRed)
	diffAdded   = color.New(color.FgGreen)
)

// printDiff prints the transactions of text whose lines change once aligned.
// Comments and the order of transactions are not compared.
func printDiff(w io.Writer, path, text string, opts ledgerfmt.Options) {
	diffHeader.Fprintf(w, "--- %s\n+++ %s (formatted)\n", path, path)
	for _, tx := range ledgerfmt.Parse(text).Transactions {
		aligned := ledgerfmt.Align(tx, opts.Column)
		if slices.Equal(tx.Lines, aligned.Lines) {
			continue
		}
		diffRange.Fprintf(w, "@@ %d,%d @@\n", tx.Start+1, tx.End+1)
		for _, l := range tx.Lines {
			diffRemoved.Fprintln(w, "-"+l)
		}
		for _, l := range aligned.Lines {
			diffAdded.Fprintln(w, "+"+l)
		}
	}
}
