// Package cmd implements the CLI application to fetch and study the dataset.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/macrolens/macrolens"
	"github.com/macrolens/macrolens/fred"
	"github.com/macrolens/macrolens/worldbank"
	"github.com/macrolens/macrolens/yahoo"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&chartCmd{},
	&summaryCmd{},
	&historyCmd{},
	&intervalsCmd{},
	&correlationCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var datasetFile = flag.String("dataset", "dataset.json", "Path to the derived dataset file written by 'mlens fetch'")

// loadDataset is the central function to read the derived dataset.
func loadDataset() (*macrolens.Dataset, error) {
	ds, err := macrolens.LoadDataset(*datasetFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no dataset at %q, run 'mlens fetch' first", *datasetFile)
	}
	return ds, err
}

// providers wires the live data sources into the loader.
func providers() macrolens.Providers {
	return macrolens.Providers{
		Equity:      yahoo.Daily,
		Macro:       fred.Series,
		Commodities: worldbank.GoldSilver,
	}
}

// printMarkdown renders a markdown document on the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
