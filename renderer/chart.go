package renderer

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/etnz/montecarlo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// sampledPaths is how many individual trial trajectories are drawn in
// gray behind the bands, for context.
const sampledPaths = 30

// Chart builds the percentile fan chart of a simulation: the 10-90
// band as outer envelope, the 20-80 band more prominent, the median
// line on top, and a handful of sampled trial paths behind.
func Chart(r *montecarlo.Result) (*plot.Plot, error) {
	bands, err := montecarlo.Percentiles(r, montecarlo.DefaultPercentiles)
	if err != nil {
		return nil, err
	}
	cfg := r.Config()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Monte Carlo Investment Simulation (%s trials)\n%s Returns | %s Annual Return | %s Volatility",
		comma(cfg.Trials), distLabel(cfg.Dist),
		montecarlo.AsPercent(cfg.AnnualReturn), montecarlo.AsPercent(cfg.AnnualVolatility))
	p.X.Label.Text = "Years"
	p.Y.Label.Text = "Portfolio Value ($)"

	xs := make([]float64, cfg.Months()+1)
	for m := range xs {
		xs[m] = float64(m) / 12
	}

	blue := color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4}
	outer, err := band(xs, bands[10], bands[90], color.NRGBA{R: blue.R, G: blue.G, B: blue.B, A: 0x26})
	if err != nil {
		return nil, err
	}
	inner, err := band(xs, bands[20], bands[80], color.NRGBA{R: blue.R, G: blue.G, B: blue.B, A: 0x40})
	if err != nil {
		return nil, err
	}
	p.Add(outer, inner)

	// sampled paths behind the median, evenly spread over the trials
	step := cfg.Trials / sampledPaths
	if step < 1 {
		step = 1
	}
	gray := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x30}
	for i := 0; i < cfg.Trials; i += step {
		line, err := plotter.NewLine(curve(xs, r.Path(i)))
		if err != nil {
			return nil, err
		}
		line.Color = gray
		line.Width = vg.Points(0.5)
		p.Add(line)
	}

	median, err := plotter.NewLine(curve(xs, bands[50]))
	if err != nil {
		return nil, err
	}
	median.Color = color.NRGBA{R: 0x08, G: 0x30, B: 0x6b, A: 0xff}
	median.Width = vg.Points(2.5)
	p.Add(median)

	p.Legend.Add("Median (50th Percentile)", median)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// SaveChart renders the fan chart to filename, appending the ".png"
// extension when missing, and returns the name actually written.
func SaveChart(r *montecarlo.Result, filename string) (string, error) {
	if !strings.HasSuffix(filename, ".png") {
		filename += ".png"
	}
	p, err := Chart(r)
	if err != nil {
		return "", err
	}
	if err := p.Save(12*vg.Inch, 7*vg.Inch, filename); err != nil {
		return "", fmt.Errorf("saving chart %q: %w", filename, err)
	}
	return filename, nil
}

// curve pairs the time axis with one value series.
func curve(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// band builds the filled polygon between the lower and upper curves.
func band(xs, lower, upper []float64, c color.Color) (*plotter.Polygon, error) {
	pts := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		pts = append(pts, plotter.XY{X: xs[i], Y: upper[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: xs[i], Y: lower[i]})
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	poly.Color = c
	poly.LineStyle.Color = color.Transparent
	return poly, nil
}
