// mcs is the Monte Carlo investment simulator command line tool.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/montecarlo/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	flag.Parse()

	// Unknown subcommands are dispatched to mcs-<name> extensions
	// found in PATH before falling back to the usage error.
	if args := flag.Args(); len(args) > 0 && !cmd.IsKnown(args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the shell completion tree. Complete() exits the
// process when invoked by the shell completion machinery, and is a
// no-op otherwise.
func completion() {
	simFlags := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := map[string]complete.Predictor{
			"initial":      predict.Something,
			"contribution": predict.Something,
			"return":       predict.Something,
			"volatility":   predict.Something,
			"years":        predict.Something,
			"trials":       predict.Something,
			"tails":        predict.Set{"normal", "standard", "extreme"},
			"seed":         predict.Something,
			"scenario":     predict.Files("*.json"),
		}
		for name, p := range extra {
			flags[name] = p
		}
		return flags
	}

	presets := predict.Set{"young-investor", "mid-career", "near-retirement", "aggressive-growth"}

	cmp := &complete.Command{
		Flags: map[string]complete.Predictor{"v": predict.Nothing},
		Sub: map[string]*complete.Command{
			"run": {Flags: simFlags(map[string]complete.Predictor{
				"o":     predict.Files("*.png"),
				"bands": predict.Nothing,
			})},
			"compare": {Flags: simFlags(map[string]complete.Predictor{
				"full": predict.Nothing,
			})},
			"chart": {Flags: simFlags(map[string]complete.Predictor{
				"o": predict.Files("*.png"),
			})},
			"preset": {
				Args: presets,
				Flags: map[string]complete.Predictor{
					"o":     predict.Files("*.png"),
					"bands": predict.Nothing,
					"seed":  predict.Something,
				},
			},
			"wizard": {Flags: map[string]complete.Predictor{"seed": predict.Something}},
			"topic":  {Args: predict.Set{"readme", "methodology", "distributions", "presets", "scenarios", "*"}},
			"assist": {},
			"help":   {},
		},
	}
	cmp.Complete("mcs")
}
