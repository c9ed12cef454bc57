package chart

import (
	"strings"
	"testing"
)

// assertChartContracts checks the markup invariants every rendered chart
// shares: embedded dual-scheme CSS, hex-only colors, and viewport sizing via
// viewBox alone.
func assertChartContracts(t *testing.T, svg string) {
	t.Helper()
	if !strings.Contains(svg, "@media (prefers-color-scheme: dark)") {
		t.Error("missing dark-scheme CSS block")
	}
	if !strings.Contains(svg, "<style>") {
		t.Error("missing embedded stylesheet")
	}
	if strings.Contains(svg, "rgba(") {
		t.Error("rgba() color found; strict SVG parsers reject it")
	}
	open := svg[:strings.Index(svg, ">")+1]
	if !strings.Contains(open, "viewBox=") {
		t.Error("svg element has no viewBox")
	}
	if strings.Contains(open, "width=") || strings.Contains(open, "height=") {
		t.Errorf("svg element carries raster dimensions: %s", open)
	}
}

func testRows() []row {
	return []row{
		{yearLabel: "2026", totalLabel: "100K", total: 100000, segments: []segment{
			{value: 100000, class: "fp-base"},
		}},
		{yearLabel: "2027", totalLabel: "120K", total: 120000, milestone: true, segments: []segment{
			{value: 104000, class: "fp-base"},
			{value: 16000, class: "fp-contrib", label: "16K"},
		}},
	}
}

func testLegend() []legendEntry {
	return []legendEntry{
		{label: "Growth", class: "fp-base", present: true},
		{label: "Contributions", class: "fp-contrib", present: true},
		{label: "FIRE", class: "fp-accent", present: false},
	}
}

func TestRender_EmptyRows(t *testing.T) {
	if got := render(Config{Title: "t"}, nil, testLegend()); got != "" {
		t.Errorf("render with no rows = %q, want empty", got)
	}
}

func TestRender_NonPositiveScale(t *testing.T) {
	rows := []row{{yearLabel: "2026", total: 0, segments: []segment{{value: 0, class: "fp-base"}}}}
	if got := render(Config{}, rows, nil); got != "" {
		t.Errorf("render with zero scale = %q, want empty", got)
	}
}

func TestRender_SkipsZeroWidthSegments(t *testing.T) {
	rows := []row{
		{yearLabel: "2026", total: 1000, segments: []segment{
			{value: 1000, class: "fp-base"},
			{value: 0, class: "fp-contrib"},
		}},
	}
	svg := render(Config{}, rows, nil)
	assertChartContracts(t, svg)
	if strings.Contains(svg, `class="fp-contrib"`) {
		t.Error("zero-width segment was drawn")
	}
	// the sole drawn segment gets the rounded trailing corners
	if !strings.Contains(svg, `<path class="fp-base"`) {
		t.Error("last drawn segment is not a rounded path")
	}
}

func TestRender_MilestoneBand(t *testing.T) {
	svg := render(Config{Title: "Projection"}, testRows(), testLegend())
	assertChartContracts(t, svg)
	if n := strings.Count(svg, `fill-opacity="0.14"`); n != 1 {
		t.Errorf("milestone band count = %d, want 1", n)
	}
	// milestone year label is accented
	if !strings.Contains(svg, ">2027</text>") {
		t.Error("milestone year label missing")
	}
}

func TestRender_ThemePinnedFills(t *testing.T) {
	light := render(Config{Theme: Light}, testRows(), nil)
	dark := render(Config{Theme: Dark}, testRows(), nil)
	if !strings.Contains(light, `fill="`+palette["fp-base"].light+`"`) {
		t.Error("light render lacks light inline fill")
	}
	if !strings.Contains(dark, `fill="`+palette["fp-base"].dark+`"`) {
		t.Error("dark render lacks dark inline fill")
	}
	// both carry both CSS schemes regardless of the pinned theme
	assertChartContracts(t, light)
	assertChartContracts(t, dark)
}

func TestRender_TargetLine(t *testing.T) {
	cfg := Config{TargetValue: 110000, TargetLabel: "Target"}
	svg := render(cfg, testRows(), nil)
	assertChartContracts(t, svg)
	if !strings.Contains(svg, `class="fp-target-line"`) {
		t.Error("target line missing")
	}
	if !strings.Contains(svg, ">Target</text>") {
		t.Error("target label missing")
	}
	// a target beyond every bar stretches the scale instead of clipping
	cfg.TargetValue = 500000
	svg = render(cfg, testRows(), nil)
	if !strings.Contains(svg, `class="fp-target-line"`) {
		t.Error("out-of-range target should still be drawn once it sets the scale")
	}
}

func TestRender_NarrowLabelHandling(t *testing.T) {
	rows := []row{
		{yearLabel: "2026", total: 100000, segments: []segment{
			{value: 99000, class: "fp-principal"},
			{value: 1000, class: "fp-interest", label: "1K", endAnchored: true},
		}},
		{yearLabel: "2027", total: 100000, segments: []segment{
			{value: 99000, class: "fp-base"},
			{value: 1000, class: "fp-contrib", label: "1K"}, // not anchored: dropped
		}},
	}
	svg := render(Config{}, rows, nil)
	assertChartContracts(t, svg)
	if got := strings.Count(svg, ">1K</text>"); got != 1 {
		t.Errorf("narrow label drawn %d times, want 1 (end-anchored only)", got)
	}
	if !strings.Contains(svg, `text-anchor="end" font-family=`) {
		t.Error("end-anchored narrow label missing")
	}
}

func TestEscape(t *testing.T) {
	if got := escape(`a<b>&"c"`); got != "a&lt;b&gt;&amp;&quot;c&quot;" {
		t.Errorf("escape = %q", got)
	}
}
