package chart

import (
	"github.com/etnz/fireplan"
)

// Bar is one year of the growth chart, the projected total split into what
// pure compounding of the starting value would have produced and what the
// contribution schedule added on top.
type Bar struct {
	Year              int
	Label             string // pre-formatted compact total
	BaseGrowthValue   float64
	ContributionValue float64
	TotalValue        float64
	IsFireYear        bool
}

// GrowthBars decomposes a projection into stacked growth bars.
//
// The attribution works by rebuilding a counterfactual "no contributions"
// series with the same starting value and rate; whatever the projection holds
// above that series came from contributions. The difference is clamped at
// zero: with a zero contribution schedule floating point can leave the total
// a hair under the base.
func GrowthBars(p fireplan.Projection, currency string) []Bar {
	bars := make([]Bar, 0, len(p.Years))
	base := p.StartingValue
	for i, y := range p.Years {
		if i > 0 {
			base = base * (1 + p.RealRate)
		}
		contrib := y.Value - base
		if contrib < 0 {
			contrib = 0
		}
		bars = append(bars, Bar{
			Year:              y.Year,
			Label:             fireplan.CompactLabel(y.Value, currency),
			BaseGrowthValue:   base,
			ContributionValue: contrib,
			TotalValue:        y.Value,
			IsFireYear:        p.FireYear != nil && y.Year == *p.FireYear,
		})
	}
	return bars
}

// Growth renders the growth bars as a stacked SVG chart, or "" when there is
// nothing to draw.
func Growth(bars []Bar, cfg Config) string {
	rows := make([]row, 0, len(bars))
	anyFire := false
	for _, b := range bars {
		rows = append(rows, row{
			yearLabel:  itoa(b.Year),
			totalLabel: b.Label,
			total:      b.TotalValue,
			milestone:  b.IsFireYear,
			segments: []segment{
				{value: b.BaseGrowthValue, class: "fp-base"},
				{value: b.ContributionValue, class: "fp-contrib"},
			},
		})
		anyFire = anyFire || b.IsFireYear
	}
	legend := []legendEntry{
		{label: "Growth", class: "fp-base", present: true},
		{label: "Contributions", class: "fp-contrib", present: true},
		{label: "FIRE", class: "fp-accent", present: anyFire},
	}
	return render(cfg, rows, legend)
}
