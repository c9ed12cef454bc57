// Package renderer assembles projection results and charts into markdown
// documents, ready for a terminal renderer or any markdown host.
package renderer

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/etnz/fireplan"
	"github.com/etnz/fireplan/chart"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders a projection summary with its growth chart
// embedded as a data URI image. When the chart degraded to an empty string
// the report falls back to a plain textual timeline, so there is always
// something to show.
func ProjectionMarkdown(p fireplan.Projection, currency, svg string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("FIRE Projection")

	label := func(v float64) string { return fireplan.CompactLabel(v, currency) }

	rows := [][]string{
		{"Target", label(p.TargetValue)},
		{"Starting value", label(p.StartingValue)},
		{"Annual contribution", label(p.AnnualContribution)},
		{"Real growth rate", fireplan.Percent(p.RealRate * 100).String()},
	}
	if p.FireYear != nil {
		rows = append(rows,
			[]string{"FIRE year", fmt.Sprintf("%d", *p.FireYear)},
			[]string{"FIRE age", fmt.Sprintf("%d", *p.FireAge)},
			[]string{"Days to FIRE", fmt.Sprintf("%d", *p.DaysToFire)},
			[]string{"Working days to FIRE", fmt.Sprintf("%d", *p.WorkingDaysToFire)},
		)
	} else {
		rows = append(rows, []string{"FIRE year", "not reached within the projection window"})
	}
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})

	embedChartOrTimeline(doc, "Projection", svg, timeline(p, currency))

	return doc.String()
}

// SplitMarkdown renders the accessible/locked report.
func SplitMarkdown(bars []chart.SplitBar, currency, svg string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accessible vs Locked")

	var fallback [][]string
	for _, b := range bars {
		fallback = append(fallback, []string{
			fmt.Sprintf("%d", b.Year),
			fireplan.CompactLabel(b.AccessibleValue, currency),
			fireplan.CompactLabel(b.LockedValue, currency),
			b.Label,
		})
	}
	if svg != "" {
		doc.PlainText(imageLine("Accessible vs locked", svg))
	} else {
		doc.Table(md.TableSet{
			Header: []string{"Year", "Accessible", "Locked", "Total"},
			Rows:   fallback,
		})
	}
	return doc.String()
}

// DebtMarkdown renders the debt payoff report.
func DebtMarkdown(bars []chart.DebtBar, currency, svg string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Debt Payoff")

	for _, b := range bars {
		if b.IsDebtFreeYear {
			doc.PlainText(fmt.Sprintf("Debt free in **%d**.", b.Year))
			break
		}
	}

	if svg != "" {
		doc.PlainText(imageLine("Debt payoff", svg))
	} else {
		var rows [][]string
		for _, b := range bars {
			rows = append(rows, []string{
				fmt.Sprintf("%d", b.Year),
				fireplan.CompactLabel(b.PrincipalRemaining, currency),
				fireplan.CompactLabel(b.InterestInBalance, currency),
				b.Label,
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Year", "Principal", "Interest", "Total"},
			Rows:   rows,
		})
	}
	return doc.String()
}

func embedChartOrTimeline(doc *md.Markdown, alt, svg string, fallback md.TableSet) {
	if svg != "" {
		doc.PlainText(imageLine(alt, svg))
		return
	}
	doc.Table(fallback)
}

// imageLine embeds the vector markup as a base64 data URI. The markup carries
// no raster sizing attributes, so the embedding context imposes no extra
// whitespace around it.
func imageLine(alt, svg string) string {
	uri := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
	return fmt.Sprintf("![%s](%s)", alt, uri)
}

// timeline is the textual fallback for a degraded growth chart.
func timeline(p fireplan.Projection, currency string) md.TableSet {
	var rows [][]string
	for _, y := range p.Years {
		hit := ""
		if y.IsTargetHit {
			hit = "target hit"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Year),
			fmt.Sprintf("%d", y.Age),
			fireplan.CompactLabel(y.Value, currency),
			hit,
		})
	}
	return md.TableSet{
		Header: []string{"Year", "Age", "Value", ""},
		Rows:   rows,
	}
}
