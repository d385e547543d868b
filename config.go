package montecarlo

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTrials is the number of simulated trials used when the caller
// does not ask for a specific count.
const DefaultTrials = 10000

var (
	// ErrConfig reports an invalid simulation parameter. It is raised at
	// configuration time, never deferred to simulation time.
	ErrConfig = errors.New("invalid simulation configuration")
	// ErrNotRun reports a reduction requested before a simulation
	// produced a result.
	ErrNotRun = errors.New("simulation has not been run")
)

// Config holds the immutable parameters of one simulation run.
//
// AnnualReturn and AnnualVolatility are fractions (0.08 for 8%). The
// monthly parameters are derived from them and never set directly.
// Build a Config with NewConfig; a zero or hand-built value is rejected
// by Run.
type Config struct {
	InitialBalance      float64
	MonthlyContribution float64
	AnnualReturn        float64
	AnnualVolatility    float64
	Years               int
	Trials              int
	Dist                Distribution

	checked bool
}

// NewConfig validates the simulation parameters and returns the
// immutable configuration. A non-positive trials selects DefaultTrials.
func NewConfig(initial, contribution, annualReturn, annualVolatility float64, years, trials int, dist Distribution) (Config, error) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	c := Config{
		InitialBalance:      initial,
		MonthlyContribution: contribution,
		AnnualReturn:        annualReturn,
		AnnualVolatility:    annualVolatility,
		Years:               years,
		Trials:              trials,
		Dist:                dist,
		checked:             true,
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch {
	case c.InitialBalance < 0:
		return fmt.Errorf("%w: initial balance must be >= 0, got %g", ErrConfig, c.InitialBalance)
	case c.MonthlyContribution < 0:
		return fmt.Errorf("%w: monthly contribution must be >= 0, got %g", ErrConfig, c.MonthlyContribution)
	case c.AnnualVolatility < 0:
		return fmt.Errorf("%w: annual volatility must be >= 0, got %g", ErrConfig, c.AnnualVolatility)
	case c.Years <= 0:
		return fmt.Errorf("%w: years must be positive, got %d", ErrConfig, c.Years)
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrConfig, c.Trials)
	case c.Dist.FatTails() && c.Dist.DegreesOfFreedom() <= 2:
		return fmt.Errorf("%w: degrees of freedom must be > 2, got %g", ErrConfig, c.Dist.DegreesOfFreedom())
	}
	return nil
}

// Months returns the number of simulated months, Years * 12.
func (c Config) Months() int { return c.Years * 12 }

// MonthlyReturn returns the geometric monthly return equivalent to the
// annual return: (1+annual)^(1/12) - 1.
func (c Config) MonthlyReturn() float64 {
	return math.Pow(1+c.AnnualReturn, 1.0/12) - 1
}

// MonthlyVolatility returns the monthly volatility, annual / sqrt(12).
func (c Config) MonthlyVolatility() float64 {
	return c.AnnualVolatility / math.Sqrt(12)
}

// TotalContributed returns the total amount paid in over the horizon:
// the initial balance plus every monthly contribution. Pure arithmetic,
// independent of any simulation outcome.
func (c Config) TotalContributed() float64 {
	return c.InitialBalance + c.MonthlyContribution*float64(c.Months())
}

func (c Config) String() string {
	return fmt.Sprintf("initial=%g contribution=%g/month return=%g%% volatility=%g%% years=%d trials=%d dist=%s",
		c.InitialBalance, c.MonthlyContribution, 100*c.AnnualReturn, 100*c.AnnualVolatility, c.Years, c.Trials, c.Dist)
}
