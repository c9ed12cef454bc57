package chart

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/etnz/fireplan"
)

func splitInput(t *testing.T) SplitInput {
	t.Helper()
	in := fireplan.ProjectionInput{
		CurrentValue:       150000,
		TargetValue:        500000,
		RealRate:           0.04,
		AnnualContribution: 30000,
		YearOfBirth:        1985,
		PensionAccessAge:   57,
	}
	p := fireplan.Project(in, fireplan.NewDate(2026, time.March, 1))
	return SplitInput{
		Projection:       p,
		AccessibleValue:  100000,
		LockedValue:      50000,
		AccessibleAnnual: 18000,
		LockedAnnual:     12000,
		Currency:         "GBP",
	}
}

func TestSplitBars_SumEqualsProjection(t *testing.T) {
	in := splitInput(t)
	bars := SplitBars(in)

	if len(bars) != len(in.Projection.Years) {
		t.Fatalf("got %d bars for %d years", len(bars), len(in.Projection.Years))
	}
	for i, b := range bars {
		if math.Abs(b.AccessibleValue+b.LockedValue-b.TotalValue) > 0.01 {
			t.Errorf("year %d: segments do not sum to the bar total", b.Year)
		}
		want := in.Projection.Years[i].Value
		if math.Abs(b.TotalValue-want) > 0.01 {
			t.Errorf("year %d: split total %v diverges from projection %v", b.Year, b.TotalValue, want)
		}
	}
}

func TestSplitBars_ContributionCutoff(t *testing.T) {
	in := splitInput(t)
	bars := SplitBars(in)
	p := in.Projection
	if p.FireYear == nil {
		t.Fatal("test projection should reach its target")
	}

	// every year strictly after the fire year compounds without contribution
	for i := 1; i < len(bars); i++ {
		if bars[i].Year <= *p.FireYear {
			continue
		}
		r := p.RealRate
		wantAcc := bars[i-1].AccessibleValue * (1 + r)
		if math.Abs(bars[i].AccessibleValue-wantAcc) > 0.01 {
			t.Errorf("year %d: accessible %v, want pure compounding %v", bars[i].Year, bars[i].AccessibleValue, wantAcc)
		}
	}
}

func TestSplitBars_UnlockedFlag(t *testing.T) {
	in := splitInput(t)
	for i, b := range SplitBars(in) {
		want := in.Projection.Years[i].PensionAccessible
		if b.Unlocked != want {
			t.Errorf("year %d: Unlocked = %v, want %v", b.Year, b.Unlocked, want)
		}
	}
}

func TestSplit_ConditionalLegend(t *testing.T) {
	in := splitInput(t)
	bars := SplitBars(in)
	svg := Split(bars, Config{Theme: Dark, TargetValue: in.Projection.TargetValue})
	if svg == "" {
		t.Fatal("expected markup, got empty string")
	}
	assertChartContracts(t, svg)

	// ages stay below 57 for this run, so no bar is unlocked and the legend
	// entry must not appear
	unlocked := false
	for _, b := range bars {
		unlocked = unlocked || b.Unlocked
	}
	if !unlocked && strings.Contains(svg, ">Unlocked<") {
		t.Error("legend shows Unlocked although no bar exercises it")
	}

	// an unlocked run must show it
	late := in
	young := fireplan.ProjectionInput{
		CurrentValue:     150000,
		TargetValue:      50_000_000,
		RealRate:         0.04,
		YearOfBirth:      1970, // age 56 at the start, unlocks next year
		PensionAccessAge: 57,
	}
	late.Projection = fireplan.Project(young, fireplan.NewDate(2026, time.March, 1))
	svg = Split(SplitBars(late), Config{Theme: Light, TargetValue: 1})
	if !strings.Contains(svg, ">Unlocked<") {
		t.Error("legend misses Unlocked although bars exercise it")
	}
}
