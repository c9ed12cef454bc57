package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fireplan"
	"github.com/etnz/fireplan/chart"
	"github.com/etnz/fireplan/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	value float64
	date  string
	theme string
	svg   bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the portfolio towards the FIRE target" }
func (*projectCmd) Usage() string {
	return `fireplan project -value <amount> [-d <date>] [-theme light|dark] [-svg]

  Simulates the portfolio year by year from the plan settings and displays
  the projection report with its growth chart. With -svg, prints the raw
  chart markup instead of the report.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.value, "value", 0, "Current portfolio value, in the plan currency.")
	f.StringVar(&c.date, "d", "0d", "Date of the projection run (defaults to today).")
	f.StringVar(&c.theme, "theme", "light", "Theme pinned in the chart's inline styling (light or dark).")
	f.BoolVar(&c.svg, "svg", false, "Print the raw SVG chart instead of the report.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := fireplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	plan, err := LoadPlan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading plan %q: %v\n", *planFile, err)
		return subcommands.ExitFailure
	}

	p := fireplan.Project(fireplan.NewProjectionInput(plan, c.value), now)
	bars := chart.GrowthBars(p, plan.Currency)
	svg := chart.Growth(bars, chart.Config{
		Title:       "Portfolio projection",
		TargetValue: plan.TargetValue,
		TargetLabel: fireplan.CompactLabel(plan.TargetValue, plan.Currency),
		Theme:       parseTheme(c.theme),
	})

	if c.svg {
		fmt.Println(svg)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ProjectionMarkdown(p, plan.Currency, svg))
	return subcommands.ExitSuccess
}
