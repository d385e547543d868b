package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/etnz/montecarlo"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAnalyst returns the simulation analyst expert. It can run Monte
// Carlo simulations through a function tool and explain the resulting
// statistics in plain language.
func NewAnalyst() *Expert {
	lib := []Function{runSimulation(), listPresets()}

	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an investment simulation analyst. The user describes a
			savings plan (starting balance, monthly contribution, expected
			return, volatility, horizon) and you run Monte Carlo simulations
			for them with the run_simulation tool.

			Explain results in plain language: what the median outcome means,
			how wide the 10th-90th percentile range is, and what the success
			rates say about the risk of the plan. Percentile bands are
			possibilities, not predictions; never promise a specific outcome.

			When the user is vague, prefer the standard fat-tailed
			distribution, 8% annual return and 18% volatility, and say which
			assumptions you filled in. Use list_presets when the user wants
			examples to start from.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func runSimulation() Function {
	return Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "run_simulation",
			Description: "Run a Monte Carlo investment simulation and return its summary statistics.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"initial_balance": {
						Type:        genai.TypeNumber,
						Description: "Starting portfolio balance in dollars, >= 0.",
					},
					"monthly_contribution": {
						Type:        genai.TypeNumber,
						Description: "Amount added every month in dollars, >= 0.",
					},
					"annual_return": {
						Type:        genai.TypeNumber,
						Description: "Expected annual return as a fraction, e.g. 0.08 for 8%.",
					},
					"annual_volatility": {
						Type:        genai.TypeNumber,
						Description: "Annual volatility as a fraction, e.g. 0.18 for 18%.",
					},
					"years": {
						Type:        genai.TypeInteger,
						Description: "Investment horizon in years.",
					},
					"distribution": {
						Type:        genai.TypeString,
						Description: "Return distribution: normal, standard (fat tails, df=5) or extreme (df=3).",
					},
				},
				Required: []string{"initial_balance", "monthly_contribution", "years"},
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "run_simulation"}

			fail := func(err error) *genai.FunctionResponse {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}

			initial, err := argNum(args, "initial_balance", 0)
			if err != nil {
				return fail(err)
			}
			contribution, err := argNum(args, "monthly_contribution", 0)
			if err != nil {
				return fail(err)
			}
			annualReturn, err := argNum(args, "annual_return", 0.08)
			if err != nil {
				return fail(err)
			}
			annualVolatility, err := argNum(args, "annual_volatility", 0.18)
			if err != nil {
				return fail(err)
			}
			years, err := argNum(args, "years", 0)
			if err != nil {
				return fail(err)
			}
			dist := montecarlo.StandardTails
			if name, ok := args["distribution"]; ok {
				s, isString := name.(string)
				if !isString {
					return fail(fmt.Errorf("distribution is not a string: %v", name))
				}
				if dist, err = montecarlo.ParseDistribution(s); err != nil {
					return fail(err)
				}
			}

			cfg, err := montecarlo.NewConfig(initial, contribution, annualReturn, annualVolatility, int(years), 0, dist)
			if err != nil {
				return fail(err)
			}
			res, err := montecarlo.Run(cfg, uint64(time.Now().UnixNano()))
			if err != nil {
				return fail(err)
			}
			s, err := montecarlo.NewStatistics(res)
			if err != nil {
				return fail(err)
			}

			fresp.Response = map[string]any{
				"median_final":                    s.MedianFinal,
				"mean_final":                      s.MeanFinal,
				"std_final":                       s.StdFinal,
				"p10_final":                       s.P10Final,
				"p20_final":                       s.P20Final,
				"p80_final":                       s.P80Final,
				"p90_final":                       s.P90Final,
				"min_final":                       s.MinFinal,
				"max_final":                       s.MaxFinal,
				"total_contributions":             s.TotalContributed,
				"success_rate_positive":           float64(s.SuccessPositive),
				"success_rate_beat_contributions": float64(s.SuccessBeatContributions),
				"success_rate_2x":                 float64(s.SuccessDoubled),
			}
			return fresp
		},
	}
}

func listPresets() Function {
	return Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "list_presets",
			Description: "List the built-in example scenarios with their parameters.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			presets := make([]map[string]any, 0)
			for _, p := range montecarlo.Presets() {
				presets = append(presets, map[string]any{
					"name":                 p.Name,
					"description":          p.Description,
					"initial_balance":      p.Config.InitialBalance,
					"monthly_contribution": p.Config.MonthlyContribution,
					"annual_return":        p.Config.AnnualReturn,
					"annual_volatility":    p.Config.AnnualVolatility,
					"years":                p.Config.Years,
					"distribution":         p.Config.Dist.String(),
				})
			}
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "list_presets",
				Response: map[string]any{"presets": presets},
			}
		},
	}
}

// argNum extracts a numeric argument, falling back to def when absent.
func argNum(args map[string]any, name string, def float64) (float64, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%s is not a number: %v", name, v)
	}
	return f, nil
}
