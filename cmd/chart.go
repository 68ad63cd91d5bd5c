package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/macrolens/macrolens/chart"
)

// chartCmd implements the "chart" command.
type chartCmd struct {
	output string
	title  string
	window int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "renders the interactive chart as an HTML file" }
func (*chartCmd) Usage() string {
	return `mlens chart [-o <file>] [-title <title>] [-window <months>]

  Renders the dataset as an interactive dual-axis figure: 6-month percent
  changes and the rolling correlation on the left axis, the 10Y-2Y spread on
  the right one, with recession and inversion periods shaded. Series are
  toggleable from the legend. The output is a standalone HTML file.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "chart.html", "Output HTML file.")
	f.StringVar(&c.title, "title", "", "Chart title.")
	f.IntVar(&c.window, "window", 0, "Rolling correlation window in months (default 12).")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := loadDataset()
	if err != nil {
		return fail(err)
	}

	file, err := os.Create(c.output)
	if err != nil {
		return fail(fmt.Errorf("could not create %q: %w", c.output, err))
	}
	defer file.Close()

	if err := chart.WriteHTML(file, ds, chart.Options{Title: c.title, Window: c.window}); err != nil {
		return fail(err)
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully rendered chart to %s.\n", c.output)
	return subcommands.ExitSuccess
}
