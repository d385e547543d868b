// Package renderer turns simulation results into human-facing
// artifacts: markdown reports for the terminal and PNG fan charts.
// It only consumes the engine's outputs; nothing here affects the
// simulation itself.
package renderer

import (
	"fmt"
	"strconv"

	"github.com/etnz/montecarlo"
)

// usd formats a simulated amount as dollars for the reports.
func usd(v float64) string { return montecarlo.M(v, "USD").String() }

// comma formats an integer with thousands separators.
func comma(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + comma(-n)
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out)
}

// distLabel names the return distribution the way the reports expect.
func distLabel(d montecarlo.Distribution) string {
	if !d.FatTails() {
		return "Normal"
	}
	return fmt.Sprintf("Fat-Tailed (%s)", d)
}
