package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/macrolens/macrolens"
)

func date(y int, m time.Month, d int) macrolens.Date { return macrolens.NewDate(y, m, d) }

func TestSummaryMarkdown(t *testing.T) {
	r := &macrolens.SummaryReport{
		Range: macrolens.NewRange(date(2023, time.July, 31), date(2023, time.December, 31)),
		Entries: []macrolens.SummaryEntry{
			{Column: macrolens.ColNasdaq, On: date(2023, time.December, 31), Value: 15011.35},
			{Column: macrolens.ColNasdaq6M, On: date(2023, time.December, 31), Value: 8.2, Percent: true},
		},
		Spread:      -0.35,
		SpreadOn:    date(2023, time.December, 31),
		Inverted:    true,
		Correlation: 0.42,
		Window:      12,
		Inversions:  []macrolens.Interval{{From: date(2023, time.July, 31), To: date(2023, time.December, 31)}},
	}

	got := SummaryMarkdown(r)
	for _, want := range []string{
		"# Dataset summary",
		"2023-07-31",
		"15011.35",
		"+8.20%", // percent columns are signed
		"the curve is inverted",
		"0 recession periods and 1 inversion periods",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	r := &macrolens.HistoryReport{
		Column:  macrolens.ColGold6M,
		Percent: true,
		Entries: []macrolens.HistoryEntry{
			{Date: date(2023, time.July, 31), Value: -1.5},
			{Date: date(2023, time.August, 31), Value: 2.25},
		},
	}
	got := HistoryMarkdown(r)
	for _, want := range []string{"History for Gold 6M %", "2023-07-31", "-1.50%", "+2.25%"} {
		if !strings.Contains(got, want) {
			t.Errorf("HistoryMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestCorrelationMarkdown(t *testing.T) {
	r := &macrolens.CorrelationReport{
		Asset:   macrolens.ColNasdaq6M,
		Window:  12,
		Defined: 24,
		Latest:  macrolens.HistoryEntry{Date: date(2023, time.December, 31), Value: 0.415},
		Min:     macrolens.HistoryEntry{Date: date(2023, time.March, 31), Value: -0.62},
		Max:     macrolens.HistoryEntry{Date: date(2023, time.October, 31), Value: 0.88},
	}
	got := CorrelationMarkdown(r)
	for _, want := range []string{
		"12-month rolling correlation",
		"24 defined windows",
		"0.415",
		"-0.620",
		"0.880",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CorrelationMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestIntervalsMarkdown(t *testing.T) {
	r := &macrolens.IntervalsReport{
		Recessions: []macrolens.Interval{{From: date(2020, time.February, 29), To: date(2020, time.April, 30)}},
		Inversions: []macrolens.Interval{{From: date(2022, time.July, 31), To: date(2023, time.December, 31)}},
	}
	got := IntervalsMarkdown(r)
	for _, want := range []string{
		"## NBER recessions",
		"## Yield curve inversions",
		"2020-02-29",
		"2023-12-31",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("IntervalsMarkdown() misses %q in:\n%s", want, got)
		}
	}
}
