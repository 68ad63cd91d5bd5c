// Package chart renders the interactive dual-axis correlation chart as a
// standalone HTML document.
package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/macrolens/macrolens"
)

// Options configures the rendered figure.
type Options struct {
	Title  string
	Window int // rolling correlation window in months; 0 means the default
}

// axis indexes of the figure: percent changes and correlation on the left,
// the yield spread on the right.
const (
	axisPercent = 0
	axisSpread  = 1
)

// Build assembles the interactive figure from a derived dataset: 6-month
// percent changes and the rolling correlation on the primary axis, the
// 10Y-2Y spread on the secondary axis, and shaded overlays for recession and
// inversion periods. Every series is toggleable from the legend.
func Build(ds *macrolens.Dataset, o Options) (*charts.Line, error) {
	if o.Window == 0 {
		o.Window = macrolens.CorrelationWindow
	}
	if o.Title == "" {
		o.Title = "Asset returns vs yield curve"
	}

	spread, err := ds.Frame.Column(macrolens.ColSpread)
	if err != nil {
		return nil, err
	}
	nasdaq6m, err := ds.Frame.Column(macrolens.ColNasdaq6M)
	if err != nil {
		return nil, err
	}
	correlation := macrolens.RollingCorrelation(nasdaq6m, spread, o.Window)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     "1280px",
			Height:    "720px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: fmt.Sprintf("monthly data, %s. Shaded: recessions (grey), inversions (red)", ds.Range),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
		charts.WithYAxisOpts(opts.YAxis{Name: "6-month change (%)", Type: "value"}),
	)
	line.ExtendYAxis(opts.YAxis{Name: "10Y-2Y spread (pp)", Type: "value", Show: opts.Bool(true)})

	var labels []string
	for _, on := range ds.Frame.Dates() {
		labels = append(labels, on.String())
	}
	line.SetXAxis(labels)

	// Percent-change series on the primary axis, in dataset order.
	for _, name := range []string{macrolens.ColNasdaq6M, macrolens.ColSP5006M, macrolens.ColGold6M, macrolens.ColSilver6M} {
		if !ds.Frame.Has(name) {
			continue
		}
		col, err := ds.Frame.Column(name)
		if err != nil {
			return nil, err
		}
		line.AddSeries(name, lineData(col, ds.Frame.Dates()),
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: axisPercent}))
	}

	corrName := fmt.Sprintf("%dM correlation (NASDAQ vs spread)", o.Window)
	line.AddSeries(corrName, lineData(correlation, ds.Frame.Dates()),
		charts.WithLineChartOpts(opts.LineChart{YAxisIndex: axisPercent}))

	// The spread carries the shaded overlays so they toggle with it. The
	// rectangles are anchored on the spread axis, so their vertical extent
	// comes from the spread's own value range.
	lo, hi := bounds(spread)
	spreadOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{YAxisIndex: axisSpread}),
	}
	if ds.Frame.Has(macrolens.ColRecession) {
		flag, err := ds.Frame.Column(macrolens.ColRecession)
		if err != nil {
			return nil, err
		}
		for _, iv := range macrolens.Recessions(flag) {
			spreadOpts = append(spreadOpts, markArea("recession", iv, lo, hi, "rgba(128,128,128,0.25)"))
		}
	}
	for _, iv := range macrolens.Inversions(spread) {
		spreadOpts = append(spreadOpts, markArea("inversion", iv, lo, hi, "rgba(200,54,54,0.18)"))
	}
	line.AddSeries(macrolens.ColSpread, lineData(spread, ds.Frame.Dates()), spreadOpts...)

	return line, nil
}

// WriteHTML renders the figure as a self-contained HTML page.
func WriteHTML(w io.Writer, ds *macrolens.Dataset, o Options) error {
	line, err := Build(ds, o)
	if err != nil {
		return err
	}
	return line.Render(w)
}

// lineData converts a series to chart points on the frame index, mapping
// missing values to nulls so the plotted line breaks instead of dropping to 0.
func lineData(s *macrolens.Series, index []macrolens.Date) []opts.LineData {
	data := make([]opts.LineData, 0, len(index))
	for _, on := range index {
		if v, ok := s.Get(on); ok && !math.IsNaN(v) {
			data = append(data, opts.LineData{Value: v})
		} else {
			data = append(data, opts.LineData{Value: nil})
		}
	}
	return data
}

// markArea shades one interval across the primary axis value range.
func markArea(name string, iv macrolens.Interval, lo, hi float64, color string) charts.SeriesOpts {
	return charts.WithMarkAreaNameCoordItemOpts(opts.MarkAreaNameCoordItem{
		Name:        name,
		Coordinate0: []interface{}{iv.From.String(), lo},
		Coordinate1: []interface{}{iv.To.String(), hi},
		ItemStyle:   &opts.ItemStyle{Color: color},
	})
}

// bounds returns the padded value range of a series, for full-height shading.
func bounds(s *macrolens.Series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range seriesValues(s) {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi { // empty or all-NaN series
		return -1, 1
	}
	pad := (hi - lo) * 0.1
	return lo - pad, hi + pad
}

func seriesValues(s *macrolens.Series) []float64 {
	var out []float64
	for _, v := range s.Values() {
		out = append(out, v)
	}
	return out
}
