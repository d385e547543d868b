package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/renderer"
	"github.com/google/subcommands"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	sim    simFlags
	output string
	bands  bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run a Monte Carlo simulation and display its summary" }
func (*runCmd) Usage() string {
	return `mcs run [-initial <$>] [-contribution <$>] [-return <%>] [-volatility <%>] [-years <n>] [-tails <dist>] [-o <chart.png>]

  Runs the simulation and displays the summary report: terminal value
  percentiles, statistical measures and success rates. With -o the
  percentile fan chart is also saved as a PNG.

Usage Examples:
# The 30-year default plan, fat tails.
$ mcs run

# A custom plan with a saved chart.
$ mcs run -initial 25000 -contribution 1000 -return 10 -volatility 22 -tails extreme -o growth

# Parameters from a scenario file.
$ mcs run -scenario plan.json

`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	c.sim.setFlags(f)
	f.StringVar(&c.output, "o", "", "also save the fan chart to this file (.png appended when missing)")
	f.BoolVar(&c.bands, "bands", false, "also display the year-by-year percentile bands")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.sim.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return simulateAndReport(cfg, c.sim.seedValue(), c.output, c.bands)
}

// simulateAndReport runs the whole pipeline and prints the report. It
// is shared by the run, preset and chart commands.
func simulateAndReport(cfg montecarlo.Config, seed uint64, chartFile string, withBands bool) subcommands.ExitStatus {
	if *Verbose {
		log.Printf("simulating %s (seed %d)", cfg, seed)
	}

	res, err := montecarlo.Run(cfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		return subcommands.ExitFailure
	}
	stats, err := montecarlo.NewStatistics(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing statistics: %v\n", err)
		return subcommands.ExitFailure
	}

	out := renderer.Summary(stats, cfg)
	if withBands {
		bands, err := montecarlo.Percentiles(res, montecarlo.DefaultPercentiles)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing percentiles: %v\n", err)
			return subcommands.ExitFailure
		}
		out += "\n" + renderer.Bands(bands, cfg)
	}
	printMarkdown(out)

	if chartFile != "" {
		name, err := renderer.SaveChart(res, chartFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving chart: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Saved chart to %s\n", name)
	}
	return subcommands.ExitSuccess
}
