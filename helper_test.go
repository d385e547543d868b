package montecarlo

import "testing"

// cfg is a test helper building a valid configuration from consts.
func cfg(t *testing.T, initial, contribution, annualReturn, annualVolatility float64, years, trials int, dist Distribution) Config {
	t.Helper()
	c, err := NewConfig(initial, contribution, annualReturn, annualVolatility, years, trials, dist)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return c
}

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }
