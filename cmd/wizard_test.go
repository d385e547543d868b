package cmd

import (
	"bytes"
	"strings"
	"testing"
)

// runSession drives a full wizard session with scripted answers and
// returns everything it printed.
func runSession(t *testing.T, answers string) string {
	t.Helper()
	var out bytes.Buffer
	c := &wizardCmd{seed: 42}
	if err := c.runWizard(reader(answers), &out); err != nil {
		t.Fatalf("runWizard() error = %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func TestWizardQuickStart(t *testing.T) {
	// Mode 1, default balance and contribution, 2 years, run,
	// no chart, no second round.
	out := runSession(t, "1\n\n\n2\ny\nn\nn\n")

	for _, want := range []string{
		"Using recommended defaults",
		"Monte Carlo Investment Simulation",
		"Success Metrics",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWizardCancelled(t *testing.T) {
	out := runSession(t, "1\n\n\n2\nn\n")
	if !strings.Contains(out, "Simulation cancelled.") {
		t.Errorf("output missing cancellation notice:\n%s", out)
	}
	if strings.Contains(out, "Success Metrics") {
		t.Errorf("cancelled session still printed a report:\n%s", out)
	}
}

func TestWizardPreset(t *testing.T) {
	// Mode 3, first preset, decline the run.
	out := runSession(t, "3\n1\nn\n")
	if !strings.Contains(out, "Selected: young-investor") {
		t.Errorf("output missing preset selection:\n%s", out)
	}
}

func TestWizardCustomNormal(t *testing.T) {
	// Mode 2, defaults everywhere, 1 year, normal distribution,
	// cancel the run. The confirmation line must show the normal
	// distribution.
	out := runSession(t, "2\n\n\n\n\n1\nn\nn\n")
	if !strings.Contains(out, "normal") {
		t.Errorf("output missing normal distribution in confirmation:\n%s", out)
	}
}
