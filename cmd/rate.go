package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fireplan"
	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	from string
	to   string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "fetch the latest conversion rate between two currencies" }
func (*rateCmd) Usage() string {
	return `fireplan rate -from <currency> [-to <currency>]

  Fetches the latest conversion rate, cached for the day. The target
  currency defaults to the plan currency, so a position held in another
  currency can be restated before projecting.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "USD", "Source currency code.")
	f.StringVar(&c.to, "to", "", "Target currency code. Defaults to the plan currency.")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	to := c.to
	if to == "" {
		plan, err := LoadPlan()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading plan %q: %v\n", *planFile, err)
			return subcommands.ExitFailure
		}
		to = plan.Currency
	}

	rate, err := fireplan.FetchRate(c.from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching rate %s/%s: %v\n", c.from, to, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s/%s %v\n", c.from, to, rate)
	return subcommands.ExitSuccess
}
