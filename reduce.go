package montecarlo

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultPercentiles are the band levels rendered by the reports: the
// 20-80 band is the prominent one, 10-90 the outer envelope, 50 the
// median line.
var DefaultPercentiles = []int{10, 20, 50, 80, 90}

// Percentiles computes the per-month percentile bands of a simulation.
//
// For each requested level (an integer in [0,100]) it returns one curve
// of Months+1 values: entry m is the portfolio value such that level%
// of the trials fall at or below it at month m. The percentile is taken
// across trials holding the month fixed, never along a single path.
func Percentiles(r *Result, levels []int) (map[int][]float64, error) {
	if r == nil || r.values == nil {
		return nil, ErrNotRun
	}
	for _, l := range levels {
		if l < 0 || l > 100 {
			return nil, fmt.Errorf("%w: percentile level %d out of range [0,100]", ErrConfig, l)
		}
	}

	_, cols := r.values.Dims()
	bands := make(map[int][]float64, len(levels))
	for _, l := range levels {
		bands[l] = make([]float64, cols)
	}

	var col []float64
	for m := range cols {
		col = mat.Col(col, m, r.values)
		sort.Float64s(col)
		for _, l := range levels {
			bands[l][m] = stat.Quantile(float64(l)/100, stat.Empirical, col, nil)
		}
	}
	return bands, nil
}

// Statistics summarizes the terminal column of a simulation: the
// distribution of portfolio values at the end of the horizon, and how
// often the outcome clears the usual thresholds.
type Statistics struct {
	MedianFinal float64
	MeanFinal   float64
	StdFinal    float64 // population standard deviation
	MinFinal    float64
	MaxFinal    float64
	P10Final    float64
	P20Final    float64
	P80Final    float64
	P90Final    float64

	// TotalContributed is the initial balance plus every monthly
	// contribution, the break-even reference for the success rates.
	TotalContributed float64

	// Success rates over the final values. The three conditions are
	// nested, so Positive >= BeatContributions >= Doubled always holds.
	SuccessPositive          Percent // final value > 0
	SuccessBeatContributions Percent // final value > total contributed
	SuccessDoubled           Percent // final value > 2x total contributed
}

// NewStatistics reduces the terminal column of a simulation result.
func NewStatistics(r *Result) (*Statistics, error) {
	if r == nil || r.values == nil {
		return nil, ErrNotRun
	}

	final := r.Final()
	contributed := r.cfg.TotalContributed()

	s := &Statistics{
		MeanFinal:        stat.Mean(final, nil),
		StdFinal:         stat.PopStdDev(final, nil),
		MinFinal:         floats.Min(final),
		MaxFinal:         floats.Max(final),
		TotalContributed: contributed,
	}

	var positive, beat, doubled int
	for _, v := range final {
		if v > 0 {
			positive++
		}
		if v > contributed {
			beat++
		}
		if v > 2*contributed {
			doubled++
		}
	}
	n := float64(len(final))
	s.SuccessPositive = Percent(100 * float64(positive) / n)
	s.SuccessBeatContributions = Percent(100 * float64(beat) / n)
	s.SuccessDoubled = Percent(100 * float64(doubled) / n)

	sort.Float64s(final)
	quantile := func(p float64) float64 { return stat.Quantile(p, stat.Empirical, final, nil) }
	s.MedianFinal = quantile(0.50)
	s.P10Final = quantile(0.10)
	s.P20Final = quantile(0.20)
	s.P80Final = quantile(0.80)
	s.P90Final = quantile(0.90)

	return s, nil
}
