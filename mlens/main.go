package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/macrolens/macrolens/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the shell completion tree. It must be invoked
// before flag.Parse; it is a no-op outside of a completion request.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"dataset": predict.Files("*.json"),
	},
	Sub: map[string]*complete.Command{
		"fetch": {Flags: map[string]complete.Predictor{
			"from": predict.Nothing,
			"to":   predict.Nothing,
		}},
		"chart": {Flags: map[string]complete.Predictor{
			"o":      predict.Files("*.html"),
			"title":  predict.Nothing,
			"window": predict.Nothing,
		}},
		"summary": {Flags: map[string]complete.Predictor{
			"window": predict.Nothing,
		}},
		"history": {Flags: map[string]complete.Predictor{
			"c": predict.Nothing,
		}},
		"intervals": {},
		"correlation": {Flags: map[string]complete.Predictor{
			"asset":  predict.Nothing,
			"window": predict.Nothing,
		}},
		"topic":  {},
		"assist": {},
	},
}

func main() {
	completion.Complete("mlens")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
