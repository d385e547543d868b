package montecarlo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

/*
	A scenario file is any JSON document carrying the usual simulator
	fields, e.g. the layout exported by the HonestMath-style tools:

	{
	    "initial_balance": 10000,
	    "monthly_contribution": 500,
	    "annual_return": 0.08,
	    "annual_volatility": 0.18,
	    "years": 30,
	    "n_simulations": 10000,
	    "fat_tails": true,
	    "tail_severity": "standard"
	}
*/

// LoadScenario reads simulation parameters from a JSON scenario file.
//
// Fields are extracted by jsonpath so that wrapping objects from other
// tools (e.g. {"scenario": {...}}) still resolve; the first match wins.
// Missing optional fields fall back to the quick-start defaults: 8%
// return, 18% volatility, standard fat tails, DefaultTrials.
func LoadScenario(r io.Reader) (Config, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return Config{}, fmt.Errorf("%w: parsing scenario JSON: %v", ErrConfig, err)
	}

	initial, ok, err := jnum(jobj, "$..initial_balance")
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Config{}, fmt.Errorf("%w: scenario has no initial_balance field", ErrConfig)
	}
	contribution, ok, err := jnum(jobj, "$..monthly_contribution")
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Config{}, fmt.Errorf("%w: scenario has no monthly_contribution field", ErrConfig)
	}
	yearsf, ok, err := jnum(jobj, "$..years")
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Config{}, fmt.Errorf("%w: scenario has no years field", ErrConfig)
	}

	annualReturn, ok, err := jnum(jobj, "$..annual_return")
	if err != nil {
		return Config{}, err
	}
	if !ok {
		annualReturn = 0.08
	}
	annualVolatility, ok, err := jnum(jobj, "$..annual_volatility")
	if err != nil {
		return Config{}, err
	}
	if !ok {
		annualVolatility = 0.18
	}

	trials := 0
	if n, ok, err := jnum(jobj, "$..n_simulations"); err != nil {
		return Config{}, err
	} else if ok {
		trials = int(n)
	} else if n, ok, err := jnum(jobj, "$..trials"); err != nil {
		return Config{}, err
	} else if ok {
		trials = int(n)
	}

	dist := StandardTails
	if fat, ok := jlookup(jobj, "$..fat_tails"); ok {
		if b, isBool := fat.(bool); isBool && !b {
			dist = Normal
		}
	}
	if dist.FatTails() {
		if sev, ok := jlookup(jobj, "$..tail_severity"); ok {
			s, isString := sev.(string)
			if !isString {
				return Config{}, fmt.Errorf("%w: tail_severity is not a string: %v", ErrConfig, sev)
			}
			if s == "normal" {
				return Config{}, fmt.Errorf("%w: tail_severity %q conflicts with fat_tails", ErrConfig, s)
			}
			if dist, err = ParseDistribution(s); err != nil {
				return Config{}, err
			}
		}
	}

	return NewConfig(initial, contribution, annualReturn, annualVolatility, int(yearsf), trials, dist)
}

// jlookup extracts the first value matching path, if any.
func jlookup(jobj any, path string) (any, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, false
	}
	// because jsonpath is never clear about whether it returns a list of
	// answers or a single one, keep the first if it is a list
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, false
		}
		jval = jlist[0]
	}
	return jval, true
}

// jnum extracts the first numeric value matching path.
func jnum(jobj any, path string) (float64, bool, error) {
	jval, ok := jlookup(jobj, path)
	if !ok {
		return 0, false, nil
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, false, fmt.Errorf("%w: %q is not a number: %v", ErrConfig, path, jval)
	}
	return val, true, nil
}
