package agent

import (
	"context"
	"testing"
)

func TestRunSimulationTool(t *testing.T) {
	tool := runSimulation()

	resp := tool.Call(context.Background(), "call-1", map[string]any{
		"initial_balance":      10000.0,
		"monthly_contribution": 500.0,
		"annual_return":        0.08,
		"annual_volatility":    0.18,
		"years":                10.0,
		"distribution":         "standard",
	})

	if resp.ID != "call-1" || resp.Name != "run_simulation" {
		t.Fatalf("response identity = %q/%q", resp.ID, resp.Name)
	}
	if errMsg, ok := resp.Response["error"]; ok {
		t.Fatalf("tool returned error: %v", errMsg)
	}
	contributed, ok := resp.Response["total_contributions"].(float64)
	if !ok || contributed != 10000+500*120 {
		t.Errorf("total_contributions = %v, want 70000", resp.Response["total_contributions"])
	}
	if _, ok := resp.Response["median_final"].(float64); !ok {
		t.Error("median_final missing from response")
	}
}

func TestRunSimulationTool_InvalidArgs(t *testing.T) {
	tool := runSimulation()

	tests := []struct {
		name string
		args map[string]any
	}{
		{"negative balance", map[string]any{"initial_balance": -1.0, "monthly_contribution": 0.0, "years": 5.0}},
		{"missing years", map[string]any{"initial_balance": 0.0, "monthly_contribution": 100.0}},
		{"bad distribution", map[string]any{"initial_balance": 0.0, "monthly_contribution": 100.0, "years": 5.0, "distribution": "cauchy"}},
		{"years as string", map[string]any{"initial_balance": 0.0, "monthly_contribution": 100.0, "years": "five"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tool.Call(context.Background(), "id", tt.args)
			if _, ok := resp.Response["error"]; !ok {
				t.Errorf("expected an error response, got %v", resp.Response)
			}
		})
	}
}

func TestListPresetsTool(t *testing.T) {
	resp := listPresets().Call(context.Background(), "id", nil)
	presets, ok := resp.Response["presets"].([]map[string]any)
	if !ok || len(presets) == 0 {
		t.Fatalf("presets = %v", resp.Response)
	}
	if presets[0]["name"] == "" {
		t.Error("preset has no name")
	}
}
