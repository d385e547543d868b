package montecarlo

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// trialBlock is the number of trial rows owned by one random stream.
// Partitioning by fixed-size blocks keeps Run deterministic for a given
// seed whatever the number of workers executing the blocks.
const trialBlock = 1024

// Result holds the matrices produced by one call to Run.
//
// The return matrix is Trials x Months of fractional monthly returns,
// the value matrix is Trials x Months+1 of portfolio values with
// column 0 equal to the initial balance for every trial. Both are
// written once during Run and only read afterwards.
type Result struct {
	cfg     Config
	returns *mat.Dense
	values  *mat.Dense
}

// Config returns the configuration this result was simulated with.
func (r *Result) Config() Config { return r.cfg }

// Returns returns the matrix of simulated monthly returns.
func (r *Result) Returns() *mat.Dense { return r.returns }

// Values returns the matrix of portfolio value trajectories.
func (r *Result) Values() *mat.Dense { return r.values }

// Final returns a copy of the terminal portfolio value of every trial.
func (r *Result) Final() []float64 {
	_, cols := r.values.Dims()
	return mat.Col(nil, cols-1, r.values)
}

// Path returns a copy of the value trajectory of a single trial.
func (r *Result) Path(trial int) []float64 {
	row := r.values.RawRowView(trial)
	out := make([]float64, len(row))
	copy(out, row)
	return out
}

// sampler returns the monthly return sampler for the configured
// distribution, consuming src.
//
// For fat tails the Student's-t scale is corrected by
// sqrt((df-2)/df): the raw variance of a Student's-t is df/(df-2)
// times its scale squared, so without the correction the realized
// volatility would not match the configured annual volatility.
func (c Config) sampler(src rand.Source) distuv.Rander {
	if c.Dist.FatTails() {
		nu := c.Dist.DegreesOfFreedom()
		return distuv.StudentsT{
			Mu:    c.MonthlyReturn(),
			Sigma: c.MonthlyVolatility() * math.Sqrt((nu-2)/nu),
			Nu:    nu,
			Src:   src,
		}
	}
	return distuv.Normal{
		Mu:    c.MonthlyReturn(),
		Sigma: c.MonthlyVolatility(),
		Src:   src,
	}
}

// blockSeed derives the independent stream seed of a trial block.
func blockSeed(seed uint64, block int) uint64 {
	// golden-ratio stride spreads the block seeds over the seed space
	return seed + uint64(block+1)*0x9e3779b97f4a7c15
}

// Run executes the full simulation pipeline: it draws the return
// matrix, compounds it into the trajectory matrix, and returns both.
//
// The configuration must have been built with NewConfig. Trials are
// simulated in blocks of trialBlock rows, each block on its own random
// stream, so two runs with the same seed produce identical matrices.
func Run(cfg Config, seed uint64) (*Result, error) {
	if !cfg.checked {
		return nil, fmt.Errorf("%w: configuration must be built with NewConfig", ErrConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	months := cfg.Months()
	returns := mat.NewDense(cfg.Trials, months, nil)
	values := mat.NewDense(cfg.Trials, months+1, nil)

	blocks := (cfg.Trials + trialBlock - 1) / trialBlock
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for b := range blocks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			lo := b * trialBlock
			hi := min(lo+trialBlock, cfg.Trials)
			cfg.draw(returns, lo, hi, rand.NewSource(blockSeed(seed, b)))
			cfg.compound(returns, values, lo, hi)
		}()
	}
	// Full barrier: no reduction may read the matrices before every
	// trial row is compounded.
	wg.Wait()

	return &Result{cfg: cfg, returns: returns, values: values}, nil
}

// draw fills the trial rows [lo, hi) of the return matrix with
// independent draws from the configured distribution.
func (c Config) draw(returns *mat.Dense, lo, hi int, src rand.Source) {
	sampler := c.sampler(src)
	for i := lo; i < hi; i++ {
		row := returns.RawRowView(i)
		for m := range row {
			row[m] = sampler.Rand()
		}
	}
}

// compound applies the monthly recurrence to the trial rows [lo, hi):
//
//	value[m+1] = (value[m] + contribution) * (1 + return[m])
//
// The contribution is added before the return is applied: money paid in
// during a month participates in that month's return. Values are not
// floored at zero; a negative balance is a valid simulated state that
// the success-rate metrics must be able to detect.
func (c Config) compound(returns, values *mat.Dense, lo, hi int) {
	months := c.Months()
	for i := lo; i < hi; i++ {
		r := returns.RawRowView(i)
		v := values.RawRowView(i)
		v[0] = c.InitialBalance
		for m := range months {
			v[m+1] = (v[m] + c.MonthlyContribution) * (1 + r[m])
		}
	}
}
