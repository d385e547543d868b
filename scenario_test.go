package montecarlo

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadScenario(t *testing.T) {
	doc := `{
		"initial_balance": 10000,
		"monthly_contribution": 500,
		"annual_return": 0.08,
		"annual_volatility": 0.18,
		"years": 30,
		"n_simulations": 5000,
		"fat_tails": true,
		"tail_severity": "extreme"
	}`
	c, err := LoadScenario(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if c.InitialBalance != 10000 || c.MonthlyContribution != 500 {
		t.Errorf("balance/contribution = %g/%g", c.InitialBalance, c.MonthlyContribution)
	}
	if c.AnnualReturn != 0.08 || c.AnnualVolatility != 0.18 {
		t.Errorf("return/volatility = %g/%g", c.AnnualReturn, c.AnnualVolatility)
	}
	if c.Years != 30 || c.Trials != 5000 {
		t.Errorf("years/trials = %d/%d", c.Years, c.Trials)
	}
	if c.Dist != ExtremeTails {
		t.Errorf("dist = %v, want extreme", c.Dist)
	}
}

func TestLoadScenario_Wrapped(t *testing.T) {
	// fields nested under a wrapping object still resolve
	doc := `{"scenario": {"initial_balance": 500, "monthly_contribution": 100, "years": 5, "fat_tails": false}}`
	c, err := LoadScenario(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if c.InitialBalance != 500 || c.Years != 5 {
		t.Errorf("initial/years = %g/%d", c.InitialBalance, c.Years)
	}
	if c.Dist != Normal {
		t.Errorf("dist = %v, want normal", c.Dist)
	}
	// defaults fill the omitted fields
	if c.AnnualReturn != 0.08 || c.AnnualVolatility != 0.18 || c.Trials != DefaultTrials {
		t.Errorf("defaults not applied: %v", c)
	}
}

func TestLoadScenario_Defaults(t *testing.T) {
	doc := `{"initial_balance": 0, "monthly_contribution": 250, "years": 10}`
	c, err := LoadScenario(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if c.Dist != StandardTails {
		t.Errorf("dist = %v, want standard fat tails by default", c.Dist)
	}
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "initial_balance: 10"},
		{"missing years", `{"initial_balance": 10, "monthly_contribution": 1}`},
		{"missing contribution", `{"initial_balance": 10, "years": 5}`},
		{"years as string", `{"initial_balance": 10, "monthly_contribution": 1, "years": "ten"}`},
		{"bad severity", `{"initial_balance": 10, "monthly_contribution": 1, "years": 5, "tail_severity": "wild"}`},
		{"invalid parameters", `{"initial_balance": -10, "monthly_contribution": 1, "years": 5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScenario(strings.NewReader(tt.doc)); !errors.Is(err, ErrConfig) {
				t.Errorf("LoadScenario error = %v, want ErrConfig", err)
			}
		})
	}
}
