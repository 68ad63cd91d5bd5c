package worldbank

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/macrolens/macrolens"
	"github.com/xuri/excelize/v2"
)

// workbook builds a minimal pink-sheet workbook: banner rows, the commodity
// header row, a units row, then one row per month.
func workbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatal(err)
	}

	cells := map[string]any{
		"A5": "", "B5": "Crude oil, Brent", "C5": "Gold", "D5": "Silver",
		"A6": "", "B6": "($/bbl)", "C6": "($/troy oz)", "D6": "($/troy oz)",
		"A7": "1960M01", "B7": 1.63, "C7": 35.27, "D7": 0.91,
		"A8": "1960M02", "B8": 1.63, "C8": "..", "D8": 0.92,
		"A9": "1960M03", "B9": 1.63, "C9": 35.27, "D9": "",
		"A10": "Next update: ...",
	}
	for ref, v := range cells {
		if err := f.SetCellValue(sheet, ref, v); err != nil {
			t.Fatal(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	columns, err := Parse(workbook(t), "Gold", "Silver")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	gold, silver := columns[0], columns[1]

	// Months are indexed at month end. The ".." cell and the empty cell are
	// skipped, the trailing note row is ignored.
	if v, ok := gold.Get(macrolens.NewDate(1960, time.January, 31)); !ok || v != 35.27 {
		t.Errorf("gold 1960-01 = %v, %v, want 35.27, true", v, ok)
	}
	if _, ok := gold.Get(macrolens.NewDate(1960, time.February, 29)); ok {
		t.Errorf("gold 1960-02 should be absent (.. cell)")
	}
	if gold.Len() != 2 {
		t.Errorf("gold Len = %d, want 2", gold.Len())
	}
	if v, _ := silver.Get(macrolens.NewDate(1960, time.February, 29)); v != 0.92 {
		t.Errorf("silver 1960-02 = %v, want 0.92", v)
	}
	if silver.Len() != 2 {
		t.Errorf("silver Len = %d, want 2", silver.Len())
	}
}

func TestParse_MissingColumn(t *testing.T) {
	if _, err := Parse(workbook(t), "Platinum"); err == nil {
		t.Errorf("Parse() should fail on a commodity absent from the header row")
	}
}

func TestGoldSilver(t *testing.T) {
	body := workbook(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write(bytes.Clone(body))
	}))
	defer srv.Close()
	defer func(old string) { BaseURL = old }(BaseURL)
	BaseURL = srv.URL

	r := macrolens.NewRange(macrolens.NewDate(1960, time.February, 1), macrolens.NewDate(1960, time.December, 31))
	gold, silver, err := GoldSilver(r)
	if err != nil {
		t.Fatalf("GoldSilver() error = %v", err)
	}
	// January falls outside the range.
	if gold.Len() != 1 {
		t.Errorf("gold Len = %d, want 1 after clipping", gold.Len())
	}
	if v, _ := silver.Get(macrolens.NewDate(1960, time.February, 29)); v != 0.92 {
		t.Errorf("silver 1960-02 = %v, want 0.92", v)
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		label    string
		expected macrolens.Date
		err      bool
	}{
		{"1960M01", macrolens.NewDate(1960, time.January, 31), false},
		{"2024M02", macrolens.NewDate(2024, time.February, 29), false},
		{"2024M13", macrolens.Date{}, true},
		{"Source: World Bank.", macrolens.Date{}, true},
	}
	for _, tt := range tests {
		got, err := parseMonth(tt.label)
		if (err != nil) != tt.err {
			t.Errorf("parseMonth(%q) error = %v, wantErr %v", tt.label, err, tt.err)
			continue
		}
		if !tt.err && got != tt.expected {
			t.Errorf("parseMonth(%q) = %s, want %s", tt.label, got, tt.expected)
		}
	}
}
