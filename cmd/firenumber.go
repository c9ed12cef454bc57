package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fireplan"
	"github.com/google/subcommands"
)

// fireNumberCmd holds the flags for the 'firenumber' subcommand.
type fireNumberCmd struct {
	spend float64
	rate  float64
}

func (*fireNumberCmd) Name() string     { return "firenumber" }
func (*fireNumberCmd) Synopsis() string { return "compute the portfolio value that sustains a monthly spend" }
func (*fireNumberCmd) Usage() string {
	return `fireplan firenumber -spend <amount> [-rate <percent>]

  Computes the FIRE number: the portfolio value that sustains the given
  monthly spend at the safe withdrawal rate. The rate defaults to the one
  in the plan file.
`
}

func (c *fireNumberCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.spend, "spend", 0, "Desired monthly spend, in the plan currency.")
	f.Float64Var(&c.rate, "rate", 0, "Safe withdrawal rate in percent. 0 uses the plan's rate.")
}

func (c *fireNumberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := LoadPlan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading plan %q: %v\n", *planFile, err)
		return subcommands.ExitFailure
	}

	rate := c.rate
	if rate == 0 {
		rate = plan.WithdrawalRate
	}

	n := fireplan.FireNumber(c.spend, rate)
	if n == 0 {
		fmt.Println("No target: the withdrawal rate is zero or negative.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("FIRE number at %s withdrawal: %s\n",
		fireplan.Percent(rate), fireplan.CompactLabel(n, plan.Currency))
	return subcommands.ExitSuccess
}
