package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/montecarlo"
	md "github.com/nao1215/markdown"
)

// Presets renders the list of built-in scenarios as a markdown table.
func Presets(presets []montecarlo.Preset) string {
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		c := p.Config
		rows = append(rows, []string{
			p.Name,
			usd(c.InitialBalance),
			usd(c.MonthlyContribution) + "/mo",
			montecarlo.AsPercent(c.AnnualReturn).String(),
			montecarlo.AsPercent(c.AnnualVolatility).String(),
			fmt.Sprintf("%d y", c.Years),
			distLabel(c.Dist),
		})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Preset Scenarios")
	doc.Table(md.TableSet{
		Header: []string{"Name", "Initial", "Contribution", "Return", "Volatility", "Horizon", "Distribution"},
		Rows:   rows,
	})
	doc.PlainText("Run one with `mcs preset <name>`.")
	return doc.String()
}
