// Package fireplan models "Financial Independence, Retire Early" (FIRE)
// trajectories for a personal investment portfolio.
//
// The core functionalities include:
//   - Projection Engine: a deterministic year-by-year simulation of portfolio
//     value under a real (inflation-adjusted) growth rate and a monthly
//     contribution schedule, detecting the first year a target value is reached.
//   - Rate & Time Utilities: converting nominal growth into real rates, and
//     counting calendar or working days to a target year.
//   - Plan Settings: a typed, validated plan record decoded at the load
//     boundary, so the numeric core only ever sees well-formed input.
//   - FX Rates: a small daily-cached client to restate a portfolio snapshot
//     in the plan's base currency.
//
// Chart decomposition and SVG rendering live in the chart subpackage; markdown
// assembly lives in renderer. This package serves as the foundational logic
// for the `fireplan` command-line tool.
//
// Every function here is a pure computation over its inputs: no I/O, no shared
// state, and the same inputs always produce the same outputs, so results are
// safe to cache and safe to compute concurrently.
package fireplan
