package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerfmt"
	"github.com/etnz/ledgerfmt/renderer"
	"github.com/google/subcommands"
)

type unclearedCmd struct {
	raw bool
}

func (*unclearedCmd) Name() string     { return "uncleared" }
func (*unclearedCmd) Synopsis() string { return "lists the postings that are not cleared yet" }
func (*unclearedCmd) Usage() string {
	return `lfmt uncleared [-raw] [<file or dir>...]

  Lists every posting that is not cleared, either by its own marker or by
  its transaction header, with totals per commodity.

`
}

func (c *unclearedCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print markdown source instead of rendering it")
}

func (c *unclearedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	paths, err := ledgerPaths(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, path := range paths {
		text, err := ledgerfmt.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		report := ledgerfmt.Uncleared(ledgerfmt.Parse(text))
		if report.Skipped > 0 {
			logger.Warn("some amounts are not counted in totals", "file", path, "count", report.Skipped)
		}
		md := renderer.RenderUncleared(report)
		if len(paths) > 1 {
			md = fmt.Sprintf("`%s`\n\n%s", path, md)
		}
		if c.raw {
			fmt.Print(md)
			continue
		}
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
