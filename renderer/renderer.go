// Package renderer turns report structures into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/macrolens/macrolens"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the dataset snapshot report.
func SummaryMarkdown(r *macrolens.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dataset summary")
	doc.PlainTextf("Monthly observations from %s to %s.", r.Range.From, r.Range.To)

	doc.H2("Latest observations")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Column", "Date", "Value"},
		Rows:      [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{e.Column, e.On.String(), formatValue(e.Value, e.Percent)})
	}
	doc.Table(table)

	doc.H2("Yield curve")
	state := "normal"
	if r.Inverted {
		state = "inverted"
	}
	doc.PlainTextf("The 10Y-2Y spread is %.2f pp as of %s: the curve is %s.", r.Spread, r.SpreadOn, state)
	if math.IsNaN(r.Correlation) {
		doc.PlainTextf("The %d-month rolling correlation is not yet defined.", r.Window)
	} else {
		doc.PlainTextf("The %d-month rolling correlation between NASDAQ returns and the spread is %.2f as of %s.",
			r.Window, r.Correlation, r.CorrelationOn)
	}

	doc.H2("Overlay periods")
	doc.PlainTextf("%d recession periods and %d inversion periods in range.", len(r.Recessions), len(r.Inversions))

	return doc.String()
}

// HistoryMarkdown renders a single column as a date/value table.
func HistoryMarkdown(r *macrolens.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", r.Column))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Value"},
		Rows:      [][]string{},
	}
	for _, entry := range r.Entries {
		table.Rows = append(table.Rows, []string{entry.Date.String(), formatValue(entry.Value, r.Percent)})
	}
	doc.Table(table)

	return doc.String()
}

// CorrelationMarkdown renders the rolling correlation report.
func CorrelationMarkdown(r *macrolens.CorrelationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%d-month rolling correlation: %s vs yield spread", r.Window, r.Asset))
	doc.PlainTextf("%d defined windows.", r.Defined)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", "Date", "Correlation"},
		Rows: [][]string{
			{"Latest", r.Latest.Date.String(), fmt.Sprintf("%.3f", r.Latest.Value)},
			{"Minimum", r.Min.Date.String(), fmt.Sprintf("%.3f", r.Min.Value)},
			{"Maximum", r.Max.Date.String(), fmt.Sprintf("%.3f", r.Max.Value)},
		},
	}
	doc.Table(table)

	return doc.String()
}

// IntervalsMarkdown renders the recession and inversion period tables.
func IntervalsMarkdown(r *macrolens.IntervalsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overlay periods")
	doc.H2("NBER recessions")
	doc.Table(intervalTable(r.Recessions))
	doc.H2("Yield curve inversions (10Y-2Y < 0)")
	doc.Table(intervalTable(r.Inversions))

	return doc.String()
}

func intervalTable(intervals []macrolens.Interval) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"From", "To", "Days"},
		Rows:      [][]string{},
	}
	for _, iv := range intervals {
		table.Rows = append(table.Rows, []string{iv.From.String(), iv.To.String(), fmt.Sprintf("%d", iv.Days())})
	}
	return table
}

func formatValue(v float64, percent bool) string {
	if percent {
		return macrolens.Percent(v).SignedString()
	}
	return fmt.Sprintf("%.2f", v)
}
