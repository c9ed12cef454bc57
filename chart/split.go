package chart

import (
	"github.com/etnz/fireplan"
)

// SplitInput seeds the accessible/locked decomposition. The two balances and
// contribution rates come from the host, which knows which accounts sit
// behind a pension lock; the projection supplies the timeline, the rate and
// the FIRE year.
type SplitInput struct {
	Projection       fireplan.Projection
	AccessibleValue  float64 // accessible balance now
	LockedValue      float64 // pension-locked balance now
	AccessibleAnnual float64 // annual contribution into accessible accounts
	LockedAnnual     float64 // annual contribution into locked accounts
	Currency         string
}

// SplitBar is one year of the accessible/locked chart.
type SplitBar struct {
	Year            int
	Label           string
	AccessibleValue float64
	LockedValue     float64
	TotalValue      float64
	IsFireYear      bool
	Unlocked        bool // pension access age reached this year
}

// SplitBars runs the two sub-portfolios through the same recurrence as the
// main engine, half-year contribution factor included. A year contributes
// while year <= fireYear: the same cutoff the engine applies, so by
// construction the two segments sum to the projected total for that year.
func SplitBars(in SplitInput) []SplitBar {
	p := in.Projection
	bars := make([]SplitBar, 0, len(p.Years))
	acc, lock := in.AccessibleValue, in.LockedValue
	r := p.RealRate
	for i, y := range p.Years {
		if i > 0 {
			accContrib, lockContrib := in.AccessibleAnnual, in.LockedAnnual
			if p.FireYear != nil && y.Year > *p.FireYear {
				accContrib, lockContrib = 0, 0
			}
			acc = acc*(1+r) + accContrib*(1+r/2)
			lock = lock*(1+r) + lockContrib*(1+r/2)
		}
		bars = append(bars, SplitBar{
			Year:            y.Year,
			Label:           fireplan.CompactLabel(acc+lock, in.Currency),
			AccessibleValue: acc,
			LockedValue:     lock,
			TotalValue:      acc + lock,
			IsFireYear:      p.FireYear != nil && y.Year == *p.FireYear,
			Unlocked:        y.PensionAccessible,
		})
	}
	return bars
}

// Split renders the accessible/locked bars as a stacked SVG chart. Once the
// pension access age is reached the locked segment is repainted in the
// unlocked color; the matching legend entry only appears when some bar
// actually shows it.
func Split(bars []SplitBar, cfg Config) string {
	rows := make([]row, 0, len(bars))
	anyFire, anyUnlocked := false, false
	for _, b := range bars {
		lockClass := "fp-lock"
		if b.Unlocked {
			lockClass = "fp-unlock"
			if b.LockedValue > 0 {
				anyUnlocked = true
			}
		}
		rows = append(rows, row{
			yearLabel:  itoa(b.Year),
			totalLabel: b.Label,
			total:      b.TotalValue,
			milestone:  b.IsFireYear,
			segments: []segment{
				{value: b.AccessibleValue, class: "fp-acc"},
				{value: b.LockedValue, class: lockClass},
			},
		})
		anyFire = anyFire || b.IsFireYear
	}
	legend := []legendEntry{
		{label: "Accessible", class: "fp-acc", present: true},
		{label: "Locked", class: "fp-lock", present: true},
		{label: "Unlocked", class: "fp-unlock", present: anyUnlocked},
		{label: "FIRE", class: "fp-accent", present: anyFire},
	}
	return render(cfg, rows, legend)
}
