package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/montecarlo"
	md "github.com/nao1215/markdown"
)

// Summary renders the simulation statistics to a markdown report,
// mirroring the sections of the classic text summary: parameters,
// terminal value distribution, statistical measures, success metrics.
func Summary(s *montecarlo.Statistics, cfg montecarlo.Config) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monte Carlo Investment Simulation")
	doc.PlainText(fmt.Sprintf("%s trials | %s returns | %s over %d years",
		comma(cfg.Trials), distLabel(cfg.Dist), usd(cfg.MonthlyContribution)+"/month", cfg.Years))

	doc.H2("Parameters")
	doc.Table(md.TableSet{
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Initial Balance", usd(cfg.InitialBalance)},
			{"Monthly Contribution", usd(cfg.MonthlyContribution)},
			{"Annual Return", montecarlo.AsPercent(cfg.AnnualReturn).String()},
			{"Annual Volatility", montecarlo.AsPercent(cfg.AnnualVolatility).String()},
			{"Time Horizon", fmt.Sprintf("%d years", cfg.Years)},
			{"Distribution", distLabel(cfg.Dist)},
			{"Trials", comma(cfg.Trials)},
		},
	})

	doc.PlainText("Total Amount Invested: " + usd(s.TotalContributed))

	doc.H2("Final Portfolio Value Distribution")
	doc.Table(md.TableSet{
		Header: []string{"Percentile", "Value"},
		Rows: [][]string{
			{"10th (Unlucky)", usd(s.P10Final)},
			{"20th", usd(s.P20Final)},
			{"50th (Median)", usd(s.MedianFinal)},
			{"80th", usd(s.P80Final)},
			{"90th (Lucky)", usd(s.P90Final)},
		},
	})

	doc.H2("Statistical Measures")
	doc.Table(md.TableSet{
		Header: []string{"Measure", "Value"},
		Rows: [][]string{
			{"Mean", usd(s.MeanFinal)},
			{"Standard Deviation", usd(s.StdFinal)},
			{"Minimum", usd(s.MinFinal)},
			{"Maximum", usd(s.MaxFinal)},
		},
	})

	doc.H2("Success Metrics")
	doc.Table(md.TableSet{
		Header: []string{"Outcome", "Rate"},
		Rows: [][]string{
			{"Ending with a positive balance", s.SuccessPositive.String()},
			{"Beating total contributions", s.SuccessBeatContributions.String()},
			{"Doubling total contributions", s.SuccessDoubled.String()},
		},
	})

	return doc.String()
}

// Comparison renders two summaries side by side, one line of headline
// figures per distribution. Both results must come from the same
// parameters apart from the distribution.
func Comparison(fat, normal *montecarlo.Statistics, fatCfg, normalCfg montecarlo.Config) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Normal vs Fat-Tailed Distributions")
	doc.PlainText(fmt.Sprintf("Same plan, %s trials each. Fat tails capture crash months the Normal assumption underestimates.",
		comma(fatCfg.Trials)))

	row := func(label string, pick func(*montecarlo.Statistics) string) []string {
		return []string{label, pick(fat), pick(normal)}
	}
	doc.Table(md.TableSet{
		Header: []string{"Measure", distLabel(fatCfg.Dist), distLabel(normalCfg.Dist)},
		Rows: [][]string{
			row("Median Final Value", func(s *montecarlo.Statistics) string { return usd(s.MedianFinal) }),
			row("10th Percentile", func(s *montecarlo.Statistics) string { return usd(s.P10Final) }),
			row("90th Percentile", func(s *montecarlo.Statistics) string { return usd(s.P90Final) }),
			row("Minimum", func(s *montecarlo.Statistics) string { return usd(s.MinFinal) }),
			row("Beat Contributions", func(s *montecarlo.Statistics) string { return s.SuccessBeatContributions.String() }),
		},
	})

	return doc.String()
}
