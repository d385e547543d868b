package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/montecarlo"
)

func run(t *testing.T) *montecarlo.Result {
	t.Helper()
	c, err := montecarlo.NewConfig(10000, 500, 0.08, 0.18, 2, 500, montecarlo.StandardTails)
	if err != nil {
		t.Fatal(err)
	}
	res, err := montecarlo.Run(c, 42)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestSummary(t *testing.T) {
	res := run(t)
	s, err := montecarlo.NewStatistics(res)
	if err != nil {
		t.Fatal(err)
	}
	out := Summary(s, res.Config())

	for _, want := range []string{
		"# Monte Carlo Investment Simulation",
		"500 trials",
		"Fat-Tailed (standard)",
		"$10,000.00",
		"Total Amount Invested: $22,000.00",
		"## Success Metrics",
		"50th (Median)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
}

func TestComparison(t *testing.T) {
	res := run(t)
	s, err := montecarlo.NewStatistics(res)
	if err != nil {
		t.Fatal(err)
	}
	out := Comparison(s, s, res.Config(), res.Config())
	if !strings.Contains(out, "# Normal vs Fat-Tailed Distributions") {
		t.Errorf("comparison is missing its title:\n%s", out)
	}
	if !strings.Contains(out, "Beat Contributions") {
		t.Errorf("comparison is missing the success row:\n%s", out)
	}
}

func TestBands(t *testing.T) {
	res := run(t)
	bands, err := montecarlo.Percentiles(res, montecarlo.DefaultPercentiles)
	if err != nil {
		t.Fatal(err)
	}
	out := Bands(bands, res.Config())

	// one row per year plus year 0
	if got := strings.Count(out, "\n|"); got < res.Config().Years+1 {
		t.Errorf("bands table has %d rows, want at least %d:\n%s", got, res.Config().Years+1, out)
	}
	if !strings.Contains(out, "P10") || !strings.Contains(out, "P90") {
		t.Errorf("bands table is missing level columns:\n%s", out)
	}
}

func TestSaveChart(t *testing.T) {
	res := run(t)
	dir := t.TempDir()

	// extension convention: ".png" is appended when missing
	name, err := SaveChart(res, filepath.Join(dir, "projection"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(name, "projection.png") {
		t.Errorf("SaveChart wrote %q, want .png appended", name)
	}
	info, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestComma(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"}, {999, "999"}, {1000, "1,000"}, {10000, "10,000"}, {1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := comma(tt.in); got != tt.want {
			t.Errorf("comma(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
