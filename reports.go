package macrolens

import (
	"fmt"
	"math"
)

// This file computes the report structures rendered by the renderer package.

// SummaryEntry is the latest defined observation of one dataset column.
type SummaryEntry struct {
	Column  string
	On      Date
	Value   float64
	Percent bool // value is a percent change, not a level
}

// SummaryReport is a snapshot of the dataset: latest observations, the state
// of the yield curve, the latest rolling correlation and the overlay counts.
type SummaryReport struct {
	Range         Range
	Entries       []SummaryEntry
	Spread        float64
	SpreadOn      Date
	Inverted      bool
	Correlation   float64
	CorrelationOn Date
	Window        int
	Recessions    []Interval
	Inversions    []Interval
}

// NewSummary builds the summary report, using a trailing correlation window of
// 'window' months (0 means the default).
func (ds *Dataset) NewSummary(window int) (*SummaryReport, error) {
	if window == 0 {
		window = CorrelationWindow
	}
	report := &SummaryReport{Range: ds.Range, Window: window}

	for _, name := range ds.Frame.Names() {
		if name == ColRecession {
			continue
		}
		col, err := ds.Frame.Column(name)
		if err != nil {
			return nil, err
		}
		if on, v, ok := latestValid(col); ok {
			report.Entries = append(report.Entries, SummaryEntry{
				Column:  name,
				On:      on,
				Value:   v,
				Percent: isPercentColumn(name),
			})
		}
	}

	spread, err := ds.Frame.Column(ColSpread)
	if err != nil {
		return nil, err
	}
	on, v, ok := latestValid(spread)
	if !ok {
		return nil, fmt.Errorf("the %s column holds no value", ColSpread)
	}
	report.Spread, report.SpreadOn, report.Inverted = v, on, v < 0
	report.Inversions = Inversions(spread)

	if ds.Frame.Has(ColRecession) {
		flag, err := ds.Frame.Column(ColRecession)
		if err != nil {
			return nil, err
		}
		report.Recessions = Recessions(flag)
	}

	corr, err := ds.correlation(ColNasdaq6M, window)
	if err != nil {
		return nil, err
	}
	if on, v, ok := latestValid(corr); ok {
		report.Correlation, report.CorrelationOn = v, on
	} else {
		report.Correlation = math.NaN()
	}
	return report, nil
}

// HistoryEntry is a single observation of a dataset column.
type HistoryEntry struct {
	Date  Date
	Value float64
}

// HistoryReport lists all defined observations of one dataset column.
type HistoryReport struct {
	Column  string
	Percent bool
	Entries []HistoryEntry
}

// NewHistory extracts the defined observations of a column.
func (ds *Dataset) NewHistory(column string) (*HistoryReport, error) {
	col, err := ds.Frame.Column(column)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, ds.Frame.Names())
	}
	report := &HistoryReport{Column: column, Percent: isPercentColumn(column)}
	for on, v := range col.Values() {
		if math.IsNaN(v) {
			continue
		}
		report.Entries = append(report.Entries, HistoryEntry{Date: on, Value: v})
	}
	return report, nil
}

// CorrelationReport describes the rolling correlation between one asset's
// percent-change column and the yield spread.
type CorrelationReport struct {
	Asset   string
	Window  int
	Series  *Series
	Defined int
	Latest  HistoryEntry
	Min     HistoryEntry
	Max     HistoryEntry
}

// NewCorrelation computes the rolling correlation report for an asset
// percent-change column ("" defaults to the NASDAQ one).
func (ds *Dataset) NewCorrelation(asset string, window int) (*CorrelationReport, error) {
	if asset == "" {
		asset = ColNasdaq6M
	}
	if window == 0 {
		window = CorrelationWindow
	}
	corr, err := ds.correlation(asset, window)
	if err != nil {
		return nil, err
	}

	report := &CorrelationReport{Asset: asset, Window: window, Series: corr}
	report.Min.Value = math.Inf(1)
	report.Max.Value = math.Inf(-1)
	for on, v := range corr.Values() {
		if math.IsNaN(v) {
			continue
		}
		report.Defined++
		report.Latest = HistoryEntry{Date: on, Value: v}
		if v < report.Min.Value {
			report.Min = HistoryEntry{Date: on, Value: v}
		}
		if v > report.Max.Value {
			report.Max = HistoryEntry{Date: on, Value: v}
		}
	}
	if report.Defined == 0 {
		return nil, fmt.Errorf("fewer than %d overlapping observations between %q and %q", window, asset, ColSpread)
	}
	return report, nil
}

// IntervalsReport lists the overlay periods derived from the dataset.
type IntervalsReport struct {
	Recessions []Interval
	Inversions []Interval
}

// NewIntervals derives the recession and inversion intervals.
func (ds *Dataset) NewIntervals() (*IntervalsReport, error) {
	spread, err := ds.Frame.Column(ColSpread)
	if err != nil {
		return nil, err
	}
	report := &IntervalsReport{Inversions: Inversions(spread)}
	if ds.Frame.Has(ColRecession) {
		flag, err := ds.Frame.Column(ColRecession)
		if err != nil {
			return nil, err
		}
		report.Recessions = Recessions(flag)
	}
	return report, nil
}

// correlation computes the rolling correlation between an asset column and
// the yield spread column.
func (ds *Dataset) correlation(asset string, window int) (*Series, error) {
	col, err := ds.Frame.Column(asset)
	if err != nil {
		return nil, err
	}
	spread, err := ds.Frame.Column(ColSpread)
	if err != nil {
		return nil, err
	}
	return RollingCorrelation(col, spread, window), nil
}

// latestValid returns the most recent non-NaN observation.
func latestValid(s *Series) (Date, float64, bool) {
	var on Date
	var value float64
	found := false
	for d, v := range s.Values() {
		if !math.IsNaN(v) {
			on, value, found = d, v, true
		}
	}
	return on, value, found
}

// isPercentColumn reports whether a column holds percent changes.
func isPercentColumn(name string) bool {
	switch name {
	case ColNasdaq6M, ColSP5006M, ColGold6M, ColSilver6M:
		return true
	}
	return false
}
