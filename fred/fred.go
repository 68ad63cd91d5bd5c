// Package fred fetches observation series from FRED, the Federal Reserve Bank
// of St. Louis data service. It uses the keyless fredgraph CSV endpoint.
package fred

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/macrolens/macrolens"
)

// BaseURL is the fredgraph CSV endpoint. Tests substitute a local server.
var BaseURL = "https://fred.stlouisfed.org/graph/fredgraph.csv"

var client = macrolens.NewDailyClient()

// Series fetches one FRED series (e.g. DGS10 or USREC) over a range.
//
// The payload is a two-column CSV, one observation per line, where a missing
// observation (market holiday, not yet published) is a lone dot:
//
//	DATE,DGS10
//	1962-01-02,4.06
//	1962-01-05,.
func Series(id string, r macrolens.Range) (*macrolens.Series, error) {
	addr := fmt.Sprintf("%s?id=%s&cosd=%s&coed=%s", BaseURL, url.QueryEscape(id), r.From, r.To)
	body, err := macrolens.Wget(client, addr)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %q from FRED: %w", id, err)
	}
	series, err := parseCSV(body, r)
	if err != nil {
		return nil, fmt.Errorf("malformed FRED response for %q: %w", id, err)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("no observations for %q in %s", id, r)
	}
	return series, nil
}

// parseCSV decodes a fredgraph CSV body into a series, skipping missing
// observations and clipping to the requested range.
func parseCSV(body []byte, r macrolens.Range) (*macrolens.Series, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	series := macrolens.NewSeries()
	for i, rec := range records {
		if i == 0 {
			continue // header line
		}
		value := strings.TrimSpace(rec[1])
		if value == "." || value == "" {
			continue
		}
		on, err := macrolens.ParseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value %q: %w", i+1, value, err)
		}
		if r.Contains(on) {
			series.Append(on, v)
		}
	}
	return series, nil
}
