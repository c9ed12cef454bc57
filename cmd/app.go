// Package cmd implements the CLI application to explore a FIRE plan.
package cmd

import (
	"flag"

	"github.com/etnz/fireplan"
	"github.com/etnz/fireplan/chart"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "plan")
	c.Register(&splitCmd{}, "plan")
	c.Register(&debtCmd{}, "plan")
	c.Register(&fireNumberCmd{}, "plan")

	c.Register(&rateCmd{}, "rates")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var planFile = flag.String("plan-file", "fireplan.json", "Path to the plan settings file (JSON format)")

// LoadPlan decodes and validates the app plan settings file.
func LoadPlan() (*fireplan.Settings, error) {
	return fireplan.LoadSettings(*planFile)
}

// parseTheme maps the -theme flag onto a chart theme, defaulting to light.
func parseTheme(s string) chart.Theme {
	if s == "dark" {
		return chart.Dark
	}
	return chart.Light
}
