package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/macrolens/macrolens"
	"github.com/macrolens/macrolens/renderer"
)

// historyCmd implements the "history" command.
type historyCmd struct {
	column string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "displays one dataset column as a table" }
func (*historyCmd) Usage() string {
	return `mlens history [-c <column>]

  Displays all defined observations of one dataset column.

Usage Examples:
$ mlens history -c "Yield Spread"
$ mlens history -c "Gold 6M %"
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.column, "c", macrolens.ColSpread, "Column to display.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := loadDataset()
	if err != nil {
		return fail(err)
	}

	report, err := ds.NewHistory(c.column)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
