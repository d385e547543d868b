package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/montecarlo"
)

// simFlags is the flag group shared by the commands that run a
// simulation. Return and volatility are entered in percent for
// convenience; the engine takes fractions.
type simFlags struct {
	initial          float64
	contribution     float64
	annualReturn     float64
	annualVolatility float64
	years            int
	trials           int
	tails            string
	seed             int64
	scenario         string
}

func (s *simFlags) setFlags(f *flag.FlagSet) {
	f.Float64Var(&s.initial, "initial", 10000, "initial balance ($)")
	f.Float64Var(&s.contribution, "contribution", 500, "monthly contribution ($)")
	f.Float64Var(&s.annualReturn, "return", 8, "expected annual return (%)")
	f.Float64Var(&s.annualVolatility, "volatility", 18, "annual volatility (%)")
	f.IntVar(&s.years, "years", 30, "investment horizon (years)")
	f.IntVar(&s.trials, "trials", montecarlo.DefaultTrials, "number of simulated trials")
	f.StringVar(&s.tails, "tails", "standard", "return distribution: normal, standard or extreme")
	f.Int64Var(&s.seed, "seed", 0, "random seed (0 picks a time-based one)")
	f.StringVar(&s.scenario, "scenario", "", "load parameters from a JSON scenario file instead of flags")
}

// config builds the engine configuration from the flags, or from the
// scenario file when one is given.
func (s *simFlags) config() (montecarlo.Config, error) {
	if s.scenario != "" {
		file, err := os.Open(s.scenario)
		if err != nil {
			return montecarlo.Config{}, fmt.Errorf("opening scenario %q: %w", s.scenario, err)
		}
		defer file.Close()
		return montecarlo.LoadScenario(file)
	}

	dist, err := montecarlo.ParseDistribution(s.tails)
	if err != nil {
		return montecarlo.Config{}, err
	}
	return montecarlo.NewConfig(s.initial, s.contribution, s.annualReturn/100, s.annualVolatility/100, s.years, s.trials, dist)
}

// seedValue returns the run seed, time-based unless pinned by -seed.
func (s *simFlags) seedValue() uint64 {
	if s.seed != 0 {
		return uint64(s.seed)
	}
	return uint64(time.Now().UnixNano())
}
