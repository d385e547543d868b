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

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	sim    simFlags
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the percentile fan chart to a PNG file" }
func (*chartCmd) Usage() string {
	return `mcs chart [-o <file>] [simulation flags]

  Runs the simulation and saves the percentile fan chart: the 10th-90th
  and 20th-80th percentile bands, the median line, and a sample of
  individual trial paths.

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.sim.setFlags(f)
	f.StringVar(&c.output, "o", "simulation_result.png", "output file (.png appended when missing)")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.sim.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	res, err := montecarlo.Run(cfg, c.sim.seedValue())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		return subcommands.ExitFailure
	}
	name, err := renderer.SaveChart(res, c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved chart to %s\n", name)
	return subcommands.ExitSuccess
}
