package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/renderer"
	"github.com/google/subcommands"
)

// presetCmd holds the flags for the 'preset' subcommand.
type presetCmd struct {
	output string
	bands  bool
	seed   int64
}

func (*presetCmd) Name() string     { return "preset" }
func (*presetCmd) Synopsis() string { return "list the built-in scenarios, or run one by name" }
func (*presetCmd) Usage() string {
	return `mcs preset [<name>]

  Without a name, lists the built-in scenarios. With one, runs it and
  displays the summary report.

Usage Examples:
$ mcs preset
$ mcs preset young-investor -o young.png

`
}

func (c *presetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "also save the fan chart to this file (.png appended when missing)")
	f.BoolVar(&c.bands, "bands", false, "also display the year-by-year percentile bands")
	f.Int64Var(&c.seed, "seed", 0, "random seed (0 picks a time-based one)")
}

func (c *presetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		printMarkdown(renderer.Presets(montecarlo.Presets()))
		return subcommands.ExitSuccess
	}

	name := f.Arg(0)
	preset, ok := montecarlo.FindPreset(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q, run 'mcs preset' to list them\n", name)
		return subcommands.ExitUsageError
	}

	sf := simFlags{seed: c.seed}
	return simulateAndReport(preset.Config, sf.seedValue(), c.output, c.bands)
}
