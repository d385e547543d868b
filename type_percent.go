package montecarlo

import "fmt"

// Percent is a percentage value in points: Percent(42.5) prints as
// "42.50%". Success rates and the annual inputs are displayed with it.
type Percent float64

// AsPercent converts a fraction (0.08) into percentage points (8).
func AsPercent(fraction float64) Percent { return Percent(100 * fraction) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
