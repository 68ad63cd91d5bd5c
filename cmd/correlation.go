package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/macrolens/macrolens"
	"github.com/macrolens/macrolens/renderer"
)

// correlationCmd implements the "correlation" command.
type correlationCmd struct {
	asset  string
	window int
}

func (*correlationCmd) Name() string { return "correlation" }
func (*correlationCmd) Synopsis() string {
	return "displays the rolling correlation between an asset and the yield spread"
}
func (*correlationCmd) Usage() string {
	return `mlens correlation [-asset <column>] [-window <months>]

  Computes the rolling correlation between an asset column and the 10Y-2Y
  yield spread, and displays its latest value and range.

Usage Examples:
$ mlens correlation
$ mlens correlation -asset "Gold 6M %" -window 24
`
}

func (c *correlationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset column to correlate with the yield spread.")
	f.IntVar(&c.window, "window", macrolens.CorrelationWindow, "Rolling window size in months.")
}

func (c *correlationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := loadDataset()
	if err != nil {
		return fail(err)
	}

	report, err := ds.NewCorrelation(c.asset, c.window)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.CorrelationMarkdown(report))
	return subcommands.ExitSuccess
}
