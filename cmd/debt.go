package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fireplan"
	"github.com/etnz/fireplan/chart"
	"github.com/etnz/fireplan/renderer"
	"github.com/google/subcommands"
)

// debtCmd holds the flags for the 'debt' subcommand.
type debtCmd struct {
	debtsFile string
	date      string
	theme     string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "project debt amortisation to the debt-free year" }
func (*debtCmd) Usage() string {
	return `fireplan debt -debts <file> [-d <date>] [-theme light|dark]

  Simulates each debt position month by month and displays the combined
  payoff chart, split into remaining principal and embedded interest.

  The debts file is a JSON array of positions:
  [{"id":"mortgage","balance":150000,"apr":3.9,"monthlyRepayment":900,"currency":"GBP"}]
`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.debtsFile, "debts", "debts.json", "Path to the debt positions file (JSON format).")
	f.StringVar(&c.date, "d", "0d", "Date of the projection run (defaults to today).")
	f.StringVar(&c.theme, "theme", "light", "Theme pinned in the chart's inline styling (light or dark).")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := fireplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	positions, err := decodeDebts(c.debtsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	currency := ""
	if len(positions) > 0 {
		currency = positions[0].Currency
	}

	bars := chart.DebtBars(positions, now)
	svg := chart.Debt(bars, chart.Config{
		Title: "Debt payoff",
		Theme: parseTheme(c.theme),
	})

	printMarkdown(renderer.DebtMarkdown(bars, currency, svg))
	return subcommands.ExitSuccess
}

func decodeDebts(path string) ([]chart.DebtPosition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open debts file %q: %w", path, err)
	}
	defer f.Close()

	var positions []struct {
		ID               string  `json:"id"`
		Name             string  `json:"name"`
		Balance          float64 `json:"balance"`
		APR              float64 `json:"apr"`
		MonthlyRepayment float64 `json:"monthlyRepayment"`
		Currency         string  `json:"currency"`
	}
	if err := json.NewDecoder(f).Decode(&positions); err != nil {
		return nil, fmt.Errorf("cannot decode debts file %q: %w", path, err)
	}

	out := make([]chart.DebtPosition, 0, len(positions))
	for _, p := range positions {
		out = append(out, chart.DebtPosition{
			ID:               p.ID,
			Name:             p.Name,
			Balance:          p.Balance,
			APR:              p.APR,
			MonthlyRepayment: p.MonthlyRepayment,
			Currency:         p.Currency,
		})
	}
	return out, nil
}
