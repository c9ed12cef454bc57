package chart

import (
	"github.com/etnz/fireplan"
)

// DebtPosition is one outstanding debt: a balance accruing interest at a
// fixed APR, repaid by a fixed monthly amount.
type DebtPosition struct {
	ID               string
	Name             string
	Balance          float64
	APR              float64 // percent per year
	MonthlyRepayment float64
	Currency         string
}

// DebtBar is one year of the combined debt chart. The outstanding total is
// split into the original principal still owed and the interest currently
// embedded in the balance.
type DebtBar struct {
	Year               int
	Label              string
	PrincipalRemaining float64
	InterestInBalance  float64
	TotalDebt          float64
	IsDebtFreeYear     bool
}

// debtState tracks one position through the monthly simulation. Keeping
// principal and accrued interest in separate buckets is what lets the yearly
// bars split the balance: a payment clears accrued interest first, and only
// the remainder amortises principal.
type debtState struct {
	principal float64
	interest  float64
	repayment float64
	rate      float64 // monthly, as a fraction
}

func (d *debtState) balance() float64 { return d.principal + d.interest }

// step advances one month. A position that reached zero stays at zero, and a
// repayment can never leave the balance higher than it was: the amortisation
// contract is monotonic decrease.
func (d *debtState) step() {
	before := d.balance()
	if before == 0 {
		return
	}
	d.interest += before * d.rate
	pay := d.repayment
	if pay >= d.interest {
		pay -= d.interest
		d.interest = 0
		d.principal -= pay
		if d.principal < 0 {
			d.principal = 0
		}
	} else {
		d.interest -= pay
	}
	if d.balance() > before {
		d.interest = before - d.principal
	}
}

// debtTailYears keeps a short flat run after the payoff so the chart shows
// the debt staying at zero, without projecting a long tail of empty rows.
const debtTailYears = 2

// DebtBars simulates the positions month by month, independently, and records
// a combined snapshot per year.
//
// The year 0 snapshot is the current state: all principal, no interest. The
// first year the combined balance reaches zero, and only that year, carries
// the debt-free flag.
func DebtBars(positions []DebtPosition, now fireplan.Date) []DebtBar {
	if len(positions) == 0 {
		return nil
	}
	currency := positions[0].Currency

	states := make([]*debtState, 0, len(positions))
	for _, p := range positions {
		states = append(states, &debtState{
			principal: p.Balance,
			repayment: p.MonthlyRepayment,
			rate:      p.APR / 12 / 100,
		})
	}

	var bars []DebtBar
	debtFree := false
	snapshot := func(year int) {
		var principal, interest float64
		for _, s := range states {
			principal += s.principal
			interest += s.interest
		}
		total := principal + interest
		first := total == 0 && !debtFree
		if first {
			debtFree = true
		}
		bars = append(bars, DebtBar{
			Year:               year,
			Label:              fireplan.CompactLabel(total, currency),
			PrincipalRemaining: principal,
			InterestInBalance:  interest,
			TotalDebt:          total,
			IsDebtFreeYear:     first,
		})
	}

	year := now.Year()
	snapshot(year)
	freeYear := 0
	if debtFree {
		freeYear = year
	}
	for n := 1; n <= fireplan.MaxProjectionYears; n++ {
		if debtFree && year-freeYear >= debtTailYears {
			break
		}
		for month := 0; month < 12; month++ {
			for _, s := range states {
				s.step()
			}
		}
		year++
		wasFree := debtFree
		snapshot(year)
		if debtFree && !wasFree {
			freeYear = year
		}
	}
	return bars
}

// Debt renders the combined debt bars as a stacked SVG chart. The interest
// label is the one that end-anchors below the legibility threshold: interest
// is usually the thin trailing segment, and dropping its label entirely would
// hide the figure the chart exists to show.
func Debt(bars []DebtBar, cfg Config) string {
	rows := make([]row, 0, len(bars))
	anyFree := false
	for _, b := range bars {
		var interestLabel string
		if b.InterestInBalance > 0 {
			// no currency: the total label on the same row already names it
			interestLabel = fireplan.CompactLabel(b.InterestInBalance, "")
		}
		rows = append(rows, row{
			yearLabel:  itoa(b.Year),
			totalLabel: b.Label,
			total:      b.TotalDebt,
			milestone:  b.IsDebtFreeYear,
			segments: []segment{
				{value: b.PrincipalRemaining, class: "fp-principal"},
				{value: b.InterestInBalance, class: "fp-interest", label: interestLabel, endAnchored: true},
			},
		})
		anyFree = anyFree || b.IsDebtFreeYear
	}
	legend := []legendEntry{
		{label: "Principal", class: "fp-principal", present: true},
		{label: "Interest", class: "fp-interest", present: true},
		{label: "Debt Free", class: "fp-accent", present: anyFree},
	}
	return render(cfg, rows, legend)
}
