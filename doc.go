// Package montecarlo projects the distribution of future investment
// portfolio values under random monthly returns.
//
// Instead of a single deterministic forecast, the engine runs many
// independent trials: each trial draws a fresh sequence of monthly
// returns from a configured distribution (Normal, or Student's-t for
// fat tails), compounds a contribution-then-return recurrence over the
// whole horizon, and the resulting ensemble is reduced into percentile
// bands and summary statistics.
//
// The core functionalities include:
//   - Configuration: an immutable Config value carrying the annual
//     inputs and their derived monthly parameters, validated once at
//     construction.
//   - Simulation: Run executes the generate-then-compound pipeline and
//     returns a Result holding the return and trajectory matrices.
//   - Reduction: Percentiles and NewStatistics compute percentile bands
//     over time, terminal statistics and success rates from a Result.
//   - Scenario Import: LoadScenario reads simulation parameters from
//     third-party JSON scenario files.
//
// Reproducibility: Run partitions trials into fixed-size blocks, and
// each block owns an independent random stream derived from the run
// seed and the block index. Results are therefore deterministic for a
// given seed, independently of how many workers execute the blocks.
//
// This package serves as the foundational logic for the `mcs`
// command-line tool; rendering, prompting and chart saving live in the
// sibling packages and only consume the outputs defined here.
package montecarlo
