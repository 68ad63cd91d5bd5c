// Package worldbank fetches monthly commodity prices from the World Bank
// "Commodity Markets Outlook" historical workbook (the pink sheet).
package worldbank

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/macrolens/macrolens"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// BaseURL is the workbook location. Tests substitute a local server.
var BaseURL = "https://thedocs.worldbank.org/en/doc/5d903e848db1d1b83e0ec8f744e55570-0350012021/related/CMO-Historical-Data-Monthly.xlsx"

const sheet = "Monthly Prices"

// The sheet layout: four banner rows, then the commodity names, then a units
// row, then one row per month since 1960.
const (
	headerRow    = 4
	firstDataRow = 6
)

// The workbook changes once a month, so cache it monthly.
var client = macrolens.NewMonthlyClient()

// GoldSilver fetches the workbook and returns the monthly gold and silver
// price series (USD per troy oz), clipped to the range.
func GoldSilver(r macrolens.Range) (gold, silver *macrolens.Series, err error) {
	body, err := macrolens.Wget(client, BaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("could not download the World Bank workbook: %w", err)
	}
	columns, err := Parse(body, "Gold", "Silver")
	if err != nil {
		return nil, nil, err
	}
	return columns[0].Clip(r), columns[1].Clip(r), nil
}

// Parse extracts named commodity columns from a workbook body. Each returned
// series is indexed on the end of the month.
func Parse(body []byte, names ...string) ([]*macrolens.Series, error) {
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not open the World Bank workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheet, err)
	}
	if len(rows) <= firstDataRow {
		return nil, fmt.Errorf("sheet %q has only %d rows", sheet, len(rows))
	}

	// Locate the requested commodities on the header row.
	indexes := make([]int, len(names))
	for i, name := range names {
		indexes[i] = -1
		for j, cell := range rows[headerRow] {
			if strings.TrimSpace(cell) == name {
				indexes[i] = j
				break
			}
		}
		if indexes[i] < 0 {
			return nil, fmt.Errorf("no %q column in sheet %q", name, sheet)
		}
	}

	out := make([]*macrolens.Series, len(names))
	for i := range out {
		out[i] = macrolens.NewSeries()
	}
	for _, row := range rows[firstDataRow:] {
		if len(row) == 0 {
			continue
		}
		on, err := parseMonth(row[0])
		if err != nil {
			continue // trailing notes below the table
		}
		for i, j := range indexes {
			if j >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[j])
			if cell == "" || cell == ".." || cell == "…" {
				continue
			}
			// Cells come back as strings; parse them exactly before
			// converting at the series boundary.
			d, err := decimal.NewFromString(cell)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value %q on %s: %w", names[i], cell, on, err)
			}
			out[i].Append(on, d.InexactFloat64())
		}
	}
	return out, nil
}

// parseMonth reads the workbook month labels ("1960M01") into the
// end-of-month date.
func parseMonth(label string) (macrolens.Date, error) {
	parts := strings.SplitN(strings.TrimSpace(label), "M", 2)
	if len(parts) != 2 {
		return macrolens.Date{}, fmt.Errorf("invalid month label %q", label)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return macrolens.Date{}, fmt.Errorf("invalid month label %q: %w", label, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return macrolens.Date{}, fmt.Errorf("invalid month label %q", label)
	}
	return macrolens.NewDate(year, time.Month(month), 1).EndOf(macrolens.Monthly), nil
}
