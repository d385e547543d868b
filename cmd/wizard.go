package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/renderer"
	"github.com/google/subcommands"
)

// wizardCmd holds the flags for the 'wizard' subcommand.
type wizardCmd struct {
	seed int64
}

func (*wizardCmd) Name() string     { return "wizard" }
func (*wizardCmd) Synopsis() string { return "interactively build and run a simulation" }
func (*wizardCmd) Usage() string {
	return `mcs wizard

  Walks through the simulation parameters question by question: pick a
  quick start, a fully custom scenario or one of the presets, confirm,
  and get the summary report. Invalid answers are asked again.

Usage Examples:
# Start the interactive session.
$ mcs wizard

`
}

func (c *wizardCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.seed, "seed", 0, "random seed (0 picks a time-based one)")
}

func (c *wizardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := c.runWizard(bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runWizard drives the whole interactive session on r/w. It returns
// io.EOF when the input ends mid-question.
func (c *wizardCmd) runWizard(r *bufio.Reader, w io.Writer) error {
	for {
		fmt.Fprintln(w, "MONTE CARLO INVESTMENT SIMULATOR")
		fmt.Fprintln(w)

		cfg, err := c.buildConfig(r, w)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "\n%s\n\n", cfg)
		run, err := promptYesNo(r, w, "Run simulation?", true)
		if err != nil {
			return err
		}
		if !run {
			fmt.Fprintln(w, "Simulation cancelled.")
			return nil
		}

		if err := c.simulate(r, w, cfg); err != nil {
			return err
		}

		fmt.Fprintln(w)
		again, err := promptYesNo(r, w, "Run another simulation?", false)
		if err != nil || !again {
			return err
		}
		fmt.Fprintln(w)
	}
}

// buildConfig asks for the simulation parameters following the mode
// the user picks.
func (c *wizardCmd) buildConfig(r *bufio.Reader, w io.Writer) (montecarlo.Config, error) {
	var zero montecarlo.Config

	mode, err := promptChoice(r, w, "Choose a mode:", []string{
		"Quick Start (recommended defaults)",
		"Custom Scenario (full control)",
		"Preset Examples",
	})
	if err != nil {
		return zero, err
	}
	fmt.Fprintln(w)

	if mode == 2 {
		presets := montecarlo.Presets()
		names := make([]string, len(presets))
		for i, p := range presets {
			names[i] = fmt.Sprintf("%s — %s", p.Name, p.Description)
		}
		i, err := promptChoice(r, w, "Select preset:", names)
		if err != nil {
			return zero, err
		}
		fmt.Fprintf(w, "\nSelected: %s\n", presets[i].Name)
		return presets[i].Config, nil
	}

	initial, err := promptNumber(r, w, "Initial balance ($)", 10000, 0, math.MaxFloat64)
	if err != nil {
		return zero, err
	}
	contribution, err := promptNumber(r, w, "Monthly contribution ($)", 500, 0, math.MaxFloat64)
	if err != nil {
		return zero, err
	}

	annualReturn, annualVolatility := 0.08, 0.18
	dist := montecarlo.StandardTails
	if mode == 1 {
		ret, err := promptNumber(r, w, "Expected annual return (%)", 8, 0, 20)
		if err != nil {
			return zero, err
		}
		vol, err := promptNumber(r, w, "Annual volatility (%)", 18, 0, 50)
		if err != nil {
			return zero, err
		}
		annualReturn, annualVolatility = ret/100, vol/100
	}

	years, err := promptNumber(r, w, "Years to invest", 30, 1, 60)
	if err != nil {
		return zero, err
	}

	if mode == 1 {
		fat, err := promptYesNo(r, w, "Use fat-tailed distributions?", true)
		if err != nil {
			return zero, err
		}
		if fat {
			sev, err := promptChoice(r, w, "Tail severity:", []string{"Standard", "Extreme"})
			if err != nil {
				return zero, err
			}
			if sev == 1 {
				dist = montecarlo.ExtremeTails
			}
		} else {
			dist = montecarlo.Normal
		}
	} else {
		fmt.Fprintln(w, "\nUsing recommended defaults: 8% return, 18% volatility, standard fat tails.")
	}

	return montecarlo.NewConfig(initial, contribution, annualReturn, annualVolatility, int(years), 0, dist)
}

// simulate runs the confirmed configuration and offers to save the
// fan chart.
func (c *wizardCmd) simulate(r *bufio.Reader, w io.Writer, cfg montecarlo.Config) error {
	seed := uint64(c.seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	fmt.Fprintf(w, "\nRunning simulation (%d trials)...\n\n", cfg.Trials)

	res, err := montecarlo.Run(cfg, seed)
	if err != nil {
		return err
	}
	stats, err := montecarlo.NewStatistics(res)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, renderer.Summary(stats, cfg))

	save, err := promptYesNo(r, w, "Save chart to file?", false)
	if err != nil {
		return err
	}
	if !save {
		return nil
	}
	name, err := promptString(r, w, "Filename", "simulation_result.png")
	if err != nil {
		return err
	}
	written, err := renderer.SaveChart(res, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Saved: %s\n", written)
	return nil
}
