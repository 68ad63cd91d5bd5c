// Package yahoo fetches daily price history from the Yahoo Finance v8 chart API.
package yahoo

import (
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/macrolens/macrolens"
)

// BaseURL is the chart API endpoint. Tests substitute a local server.
var BaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// client is shared by all requests; responses are disk-cached for a day.
var client = macrolens.NewDailyClient()

// Daily returns the adjusted daily closes for a symbol over a range.
//
// The chart payload nests the quotes deep inside the result object:
//
//	{ "chart": { "result": [ {
//	    "timestamp": [ 1262304000, ... ],
//	    "indicators": {
//	      "adjclose": [ { "adjclose": [ 2308.42, ... ] } ],
//	      "quote":    [ { "close":    [ 2308.42, ... ] } ]
//	  } } ], "error": null } }
func Daily(symbol string, r macrolens.Range) (*macrolens.Series, error) {
	addr := fmt.Sprintf("%s/%s?period1=%d&period2=%d&interval=1d&events=history",
		BaseURL, url.PathEscape(symbol), r.From.Unix(), r.To.Add(1).Unix())

	var jobj any
	if err := macrolens.Jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("could not fetch %q from Yahoo Finance: %w", symbol, err)
	}

	if desc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil && desc != nil {
		return nil, fmt.Errorf("yahoo finance error for %q: %v", symbol, desc)
	}

	timestamps, err := floats("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, fmt.Errorf("unexpected chart payload for %q: %w", symbol, err)
	}

	// Prefer adjusted closes, fall back to raw closes.
	closes, err := floats("$.chart.result[0].indicators.adjclose[0].adjclose", jobj)
	if err != nil {
		closes, err = floats("$.chart.result[0].indicators.quote[0].close", jobj)
		if err != nil {
			return nil, fmt.Errorf("unexpected chart payload for %q: %w", symbol, err)
		}
	}
	if len(closes) != len(timestamps) {
		return nil, fmt.Errorf("chart payload for %q has %d timestamps but %d closes", symbol, len(timestamps), len(closes))
	}

	series := macrolens.NewSeries()
	for i, ts := range timestamps {
		if math.IsNaN(closes[i]) {
			continue // quote missing for that day
		}
		on := macrolens.NewDate(time.Unix(int64(ts), 0).UTC().Date())
		if r.Contains(on) {
			series.Append(on, closes[i])
		}
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("no quotes for %q in %s", symbol, r)
	}
	return series, nil
}

// floats extracts a JSON array of numbers at a jsonpath. Null entries become NaN.
func floats(path string, jobj any) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot read %q: not an array but %T", path, jval)
	}
	out := make([]float64, 0, len(jlist))
	for _, jv := range jlist {
		switch v := jv.(type) {
		case float64:
			out = append(out, v)
		case nil:
			out = append(out, math.NaN())
		default:
			return nil, fmt.Errorf("cannot read %q: element is %T, want number", path, jv)
		}
	}
	return out, nil
}
