// Package chart decomposes FIRE projections into stacked-bar records and
// renders them as self-contained, themeable SVG markup.
//
// There is one layout algorithm, shared by the growth, split and debt charts:
// the three call sites only differ in how they extract segments from their bar
// records and in their palette and legend entries.
package chart

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Theme selects the colors pinned in the inline fallback attributes. The
// embedded CSS always carries both schemes regardless of the requested theme,
// so renderers that honor prefers-color-scheme switch automatically.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Config is the per-render chart configuration. It is immutable and carries
// no shared state between renders.
type Config struct {
	Title       string
	Tooltip     string
	TargetValue float64
	TargetLabel string
	Theme       Theme
}

// Layout constants shared by all three chart kinds. The canvas width is
// fixed; the height grows linearly with the number of rows.
const (
	canvasWidth  = 760
	rowHeight    = 28
	barHeight    = 20
	leftGutter   = 56 // year labels
	rightGutter  = 84 // per-row total labels
	topPad       = 12
	bottomPad    = 10
	titleHeight  = 26
	legendHeight = 24
	cornerRadius = 4

	// minLabelWidth is the narrowest segment that can still hold a legible
	// inline label.
	minLabelWidth = 46

	fontFamily = "-apple-system, 'Helvetica Neue', Arial, sans-serif"
)

// paint is a pair of colors, one per scheme. Values are plain hex: strict SVG
// parsers reject CSS3-only notations, and opacity always travels as a
// separate attribute.
type paint struct {
	light, dark string
}

func (p paint) inline(t Theme) string {
	if t == Dark {
		return p.dark
	}
	return p.light
}

// palette maps CSS class names to their colors for both schemes. Every
// painted element carries a class (for the embedded CSS, the primary styling)
// and an inline fill (the theme-pinned fallback).
var palette = map[string]paint{
	"fp-text":      {"#1f2328", "#e6edf3"},
	"fp-muted":     {"#6e7781", "#8b949e"},
	"fp-accent":    {"#bf3989", "#f778ba"},
	"fp-band":      {"#bf3989", "#f778ba"},
	"fp-target":    {"#8250df", "#b197fc"},
	"fp-base":      {"#0969da", "#58a6ff"},
	"fp-contrib":   {"#1a7f37", "#3fb950"},
	"fp-acc":       {"#0969da", "#58a6ff"},
	"fp-lock":      {"#8250df", "#b197fc"},
	"fp-unlock":    {"#1a7f37", "#3fb950"},
	"fp-principal": {"#cf222e", "#f85149"},
	"fp-interest":  {"#9a6700", "#d29922"},
	"fp-onbar":     {"#ffffff", "#0d1117"},
}

// segment is one stacked slice of a bar, drawn left to right in record order.
type segment struct {
	value float64
	label string // inline label, empty to omit
	class string
	// endAnchored redraws the label end-anchored over the bar when the
	// segment is too narrow, instead of dropping it.
	endAnchored bool
}

// row is one horizontal bar of the chart.
type row struct {
	yearLabel  string
	totalLabel string
	total      float64
	segments   []segment
	milestone  bool
}

// legendEntry is one fixed-order legend item. Conditional entries set present
// to false when no bar in the series exercises their condition.
type legendEntry struct {
	label   string
	class   string
	present bool
}

// render lays out and draws a stacked horizontal bar chart.
//
// It returns the empty string when there is nothing meaningful to draw: no
// rows, or a scale maximum of zero or less. That is the graceful-degradation
// contract, not an error: the caller falls back to a textual summary.
func render(cfg Config, rows []row, legend []legendEntry) string {
	if len(rows) == 0 {
		return ""
	}
	max := cfg.TargetValue
	for _, r := range rows {
		if r.total > max {
			max = r.total
		}
	}
	if max <= 0 {
		return ""
	}

	barArea := float64(canvasWidth - leftGutter - rightGutter)
	scale := func(v float64) float64 { return v / max * barArea }

	var entries []legendEntry
	for _, e := range legend {
		if e.present {
			entries = append(entries, e)
		}
	}

	top := topPad
	if cfg.Title != "" {
		top += titleHeight
	}
	height := top + len(rows)*rowHeight + bottomPad
	if len(entries) > 0 {
		height += legendHeight
	}

	var b strings.Builder
	// No raster width/height attributes: embedding contexts size the image
	// from the viewport alone.
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 ` +
		itoa(canvasWidth) + ` ` + itoa(height) + `">`)
	if cfg.Tooltip != "" {
		b.WriteString(`<title>` + escape(cfg.Tooltip) + `</title>`)
	}
	writeStyle(&b)

	y := topPad
	if cfg.Title != "" {
		text(&b, cfg.Theme, "fp-text", float64(leftGutter), float64(y+16), "start", 14, "bold", cfg.Title)
		y += titleHeight
	}

	for _, r := range rows {
		drawRow(&b, cfg.Theme, r, y, scale)
		y += rowHeight
	}

	if cfg.TargetValue > 0 && cfg.TargetValue <= max {
		drawTarget(&b, cfg, top, y, scale(cfg.TargetValue))
	}

	if len(entries) > 0 {
		drawLegend(&b, cfg.Theme, entries, y+6)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// writeStyle emits the embedded CSS for both color schemes. Capable renderers
// use these rules and follow the OS scheme; the inline fill attributes on each
// element are the fallback for renderers that ignore embedded CSS.
func writeStyle(b *strings.Builder) {
	classes := make([]string, 0, len(palette))
	for class := range palette {
		classes = append(classes, class)
	}
	// deterministic output regardless of map order
	sort.Strings(classes)

	b.WriteString("<style>")
	for _, class := range classes {
		b.WriteString("." + class + "{fill:" + palette[class].light + ";}")
	}
	b.WriteString(".fp-target-line{stroke:" + palette["fp-target"].light + ";}")
	b.WriteString("@media (prefers-color-scheme: dark){")
	for _, class := range classes {
		b.WriteString("." + class + "{fill:" + palette[class].dark + ";}")
	}
	b.WriteString(".fp-target-line{stroke:" + palette["fp-target"].dark + ";}")
	b.WriteString("}</style>")
}

func drawRow(b *strings.Builder, theme Theme, r row, y int, scale func(float64) float64) {
	barY := float64(y + (rowHeight-barHeight)/2)

	if r.milestone {
		// full-width translucent highlight band behind the milestone row
		rect(b, theme, "fp-band", 0, float64(y), canvasWidth, rowHeight, `fill-opacity="0.14"`)
	}

	yearClass := "fp-muted"
	weight := "normal"
	if r.milestone {
		yearClass, weight = "fp-accent", "bold"
	}
	text(b, theme, yearClass, leftGutter-8, barY+14, "end", 12, weight, r.yearLabel)

	// find the last segment that will actually be drawn: only that one gets
	// the rounded trailing corners
	last := -1
	for i, s := range r.segments {
		if scale(s.value) > 0 {
			last = i
		}
	}

	x := float64(leftGutter)
	for i, s := range r.segments {
		w := scale(s.value)
		if w <= 0 {
			continue // no zero-width rects
		}
		if i == last {
			roundedRect(b, theme, s.class, x, barY, w, barHeight)
		} else {
			rect(b, theme, s.class, x, barY, w, barHeight, "")
		}
		if s.label != "" {
			switch {
			case w >= minLabelWidth:
				text(b, theme, "fp-onbar", x+6, barY+14, "start", 11, "normal", s.label)
			case s.endAnchored:
				// too narrow: keep the label over the bar, ending at the
				// segment edge, so it neither clips nor collides with the
				// total column
				text(b, theme, "fp-onbar", x+w-3, barY+14, "end", 11, "normal", s.label)
			}
		}
		x += w
	}

	if r.totalLabel != "" {
		text(b, theme, "fp-text", x+6, barY+14, "start", 12, "normal", r.totalLabel)
	}
}

func drawTarget(b *strings.Builder, cfg Config, top, bottom int, offset float64) {
	x := float64(leftGutter) + offset
	b.WriteString(`<line class="fp-target-line" x1="` + num(x) + `" y1="` + itoa(top) +
		`" x2="` + num(x) + `" y2="` + itoa(bottom) +
		`" stroke="` + palette["fp-target"].inline(cfg.Theme) +
		`" stroke-width="1" stroke-dasharray="4 3" stroke-opacity="0.8"/>`)
	if cfg.TargetLabel != "" {
		text(b, cfg.Theme, "fp-target", x+4, float64(top)+10, "start", 11, "normal", cfg.TargetLabel)
	}
}

func drawLegend(b *strings.Builder, theme Theme, entries []legendEntry, y int) {
	x := float64(leftGutter)
	for _, e := range entries {
		rect(b, theme, e.class, x, float64(y), 10, 10, "")
		text(b, theme, "fp-muted", x+14, float64(y)+9, "start", 11, "normal", e.label)
		// rough advance: swatch, gap and ~6.2px per character
		x += 14 + float64(len(e.label))*6.2 + 18
	}
}

// rect emits a plain rectangle with class styling and an inline theme fill.
func rect(b *strings.Builder, theme Theme, class string, x, y, w, h float64, extra string) {
	b.WriteString(`<rect class="` + class + `" x="` + num(x) + `" y="` + num(y) +
		`" width="` + num(w) + `" height="` + num(h) +
		`" fill="` + palette[class].inline(theme) + `"`)
	if extra != "" {
		b.WriteString(" " + extra)
	}
	b.WriteString(`/>`)
}

// roundedRect emits a rectangle with rounded trailing corners only. A plain
// rx would round all four; the leading edge must stay square because it butts
// against the previous segment.
func roundedRect(b *strings.Builder, theme Theme, class string, x, y, w, h float64) {
	r := math.Min(cornerRadius, w/2)
	d := "M" + num(x) + " " + num(y) +
		"h" + num(w-r) +
		"a" + num(r) + " " + num(r) + " 0 0 1 " + num(r) + " " + num(r) +
		"v" + num(h-2*r) +
		"a" + num(r) + " " + num(r) + " 0 0 1 " + num(-r) + " " + num(r) +
		"h" + num(-(w-r)) + "z"
	b.WriteString(`<path class="` + class + `" d="` + d +
		`" fill="` + palette[class].inline(theme) + `"/>`)
}

func text(b *strings.Builder, theme Theme, class string, x, y float64, anchor string, size int, weight, s string) {
	b.WriteString(`<text class="` + class + `" x="` + num(x) + `" y="` + num(y) +
		`" text-anchor="` + anchor + `" font-family="` + fontFamily +
		`" font-size="` + itoa(size) + `"`)
	if weight != "normal" {
		b.WriteString(` font-weight="` + weight + `"`)
	}
	b.WriteString(` fill="` + palette[class].inline(theme) + `">` + escape(s) + `</text>`)
}

func itoa(i int) string { return strconv.Itoa(i) }

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
