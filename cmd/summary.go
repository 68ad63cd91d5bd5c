package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/macrolens/macrolens/renderer"
)

// summaryCmd implements the "summary" command.
type summaryCmd struct {
	window int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "displays a snapshot of the dataset" }
func (*summaryCmd) Usage() string {
	return `mlens summary [-window <months>]

  Displays the latest observation of every column, the state of the yield
  curve, the latest rolling correlation and the overlay period counts.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.window, "window", 0, "Rolling correlation window in months (default 12).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := loadDataset()
	if err != nil {
		return fail(err)
	}

	report, err := ds.NewSummary(c.window)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
