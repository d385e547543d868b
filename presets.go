package montecarlo

// Preset is a named, ready-to-run scenario.
type Preset struct {
	Name        string
	Description string
	Config      Config
}

// mustConfig builds a preset configuration; presets are package
// constants, an invalid one is a programming error.
func mustConfig(initial, contribution, annualReturn, annualVolatility float64, years int, dist Distribution) Config {
	c, err := NewConfig(initial, contribution, annualReturn, annualVolatility, years, DefaultTrials, dist)
	if err != nil {
		panic(err)
	}
	return c
}

// Presets returns the built-in scenarios, from first savings to the
// last decade before retirement.
func Presets() []Preset {
	return []Preset{
		{
			Name:        "young-investor",
			Description: "Young Investor (Age 25): long horizon, high equity exposure",
			Config:      mustConfig(5000, 500, 0.09, 0.20, 40, StandardTails),
		},
		{
			Name:        "mid-career",
			Description: "Mid-Career (Age 40): established portfolio, steady contributions",
			Config:      mustConfig(100000, 1500, 0.08, 0.16, 25, StandardTails),
		},
		{
			Name:        "near-retirement",
			Description: "Near Retirement (Age 55): shorter horizon, reduced volatility",
			Config:      mustConfig(500000, 2000, 0.06, 0.12, 10, StandardTails),
		},
		{
			Name:        "aggressive-growth",
			Description: "Aggressive Growth: higher return and volatility, extreme tail risk",
			Config:      mustConfig(25000, 1000, 0.10, 0.22, 30, ExtremeTails),
		},
	}
}

// FindPreset returns the preset with the given name, or false.
func FindPreset(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
