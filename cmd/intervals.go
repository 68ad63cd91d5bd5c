package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/macrolens/macrolens/renderer"
)

// intervalsCmd implements the "intervals" command.
type intervalsCmd struct{}

func (*intervalsCmd) Name() string     { return "intervals" }
func (*intervalsCmd) Synopsis() string { return "lists recession and yield curve inversion periods" }
func (*intervalsCmd) Usage() string {
	return `mlens intervals

  Lists NBER recession periods and 10Y-2Y yield curve inversion periods
  found in the dataset.

Usage Examples:
$ mlens intervals
`
}

func (*intervalsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *intervalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := loadDataset()
	if err != nil {
		return fail(err)
	}

	report, err := ds.NewIntervals()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.IntervalsMarkdown(report))
	return subcommands.ExitSuccess
}
