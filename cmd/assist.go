package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fireplan"
	"github.com/etnz/fireplan/agent"
	"github.com/etnz/fireplan/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	value float64
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "Start an interactive session about your plan with the AI assistant." }
func (*assistCmd) Usage() string {
	return `fireplan assist -value <amount> [question...]:
  Projects the plan, hands the report to the assistant, and starts an
  interactive session about it.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.value, "value", 0, "Current portfolio value, in the plan currency.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	plan, err := LoadPlan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading plan %q: %v\n", *planFile, err)
		return subcommands.ExitFailure
	}

	// The assistant gets the textual report: charts are images, the model
	// reads the fallback timeline instead.
	p := fireplan.Project(fireplan.NewProjectionInput(plan, c.value), fireplan.Today())
	report := renderer.ProjectionMarkdown(p, plan.Currency, "")

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, report)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
