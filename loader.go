package macrolens

import (
	"fmt"
	"log"
)

// Source identifiers for the external providers.
const (
	SymbolNasdaq = "^IXIC" // NASDAQ Composite (Yahoo Finance)
	SymbolSP500  = "^GSPC" // S&P 500 (Yahoo Finance)
	SymbolGold   = "GC=F"  // Gold futures (Yahoo Finance)
	SymbolSilver = "SI=F"  // Silver futures (Yahoo Finance)

	Series2Y        = "DGS2"   // 2-Year Treasury constant maturity rate (FRED)
	Series10Y       = "DGS10"  // 10-Year Treasury constant maturity rate (FRED)
	Series3M        = "DGS3MO" // 3-Month Treasury bill rate (FRED)
	Series30Y       = "DGS30"  // 30-Year Treasury constant maturity rate (FRED)
	SeriesRecession = "USREC"  // NBER recession indicator (FRED)
)

// Column names of the derived dataset.
const (
	ColNasdaq = "NASDAQ"
	ColSP500  = "S&P 500"
	ColGold   = "Gold"
	ColSilver = "Silver"

	Col2Y  = "2Y Treasury"
	Col10Y = "10Y Treasury"
	Col3M  = "3M Treasury"
	Col30Y = "30Y Treasury"

	ColNasdaq6M = "NASDAQ 6M %"
	ColSP5006M  = "S&P 500 6M %"
	ColGold6M   = "Gold 6M %"
	ColSilver6M = "Silver 6M %"

	ColSpread   = "Yield Spread"  // 10Y - 2Y
	ColSpread3M = "10Y-3M Spread" // 10Y - 3M

	ColRecession = "Recession"
)

// pctChangeMonths is the lookback of the rolling percent change, in months.
const pctChangeMonths = 6

// CorrelationWindow is the default trailing window of the rolling
// correlation, in months.
const CorrelationWindow = 12

// Providers holds the data-source functions used by Load. Each function
// returns a date-indexed series for one identifier over a range. The
// indirection keeps Load testable against stub sources.
type Providers struct {
	// Equity returns daily closes for a Yahoo Finance symbol.
	Equity func(symbol string, r Range) (*Series, error)
	// Macro returns a FRED series (daily yields, monthly recession flag).
	Macro func(series string, r Range) (*Series, error)
	// Commodities returns the monthly gold and silver price history from the
	// World Bank workbook.
	Commodities func(r Range) (gold, silver *Series, err error)
}

// Load fetches all sources sequentially, aligns them on a month-end index and
// derives the metric columns. Equity and core yield failures abort the load;
// gold/silver, the optional yields and the recession flag degrade to missing
// columns with a warning, matching the tolerance of the sources themselves.
func (p Providers) Load(rng Range) (*Dataset, error) {
	frame := NewFrame()

	// Equity indices: required.
	log.Printf("loading NASDAQ data (%s)", SymbolNasdaq)
	nasdaq, err := p.Equity(SymbolNasdaq, rng)
	if err != nil {
		return nil, fmt.Errorf("could not fetch NASDAQ: %w", err)
	}
	log.Printf("loading S&P 500 data (%s)", SymbolSP500)
	sp500, err := p.Equity(SymbolSP500, rng)
	if err != nil {
		return nil, fmt.Errorf("could not fetch S&P 500: %w", err)
	}

	nasdaqMonthly := nasdaq.Resample(Monthly)
	sp500Monthly := sp500.Resample(Monthly)
	frame.Add(ColNasdaq, nasdaqMonthly)
	frame.Add(ColSP500, sp500Monthly)
	frame.Add(ColNasdaq6M, nasdaqMonthly.PercentChange(pctChangeMonths))
	frame.Add(ColSP5006M, sp500Monthly.PercentChange(pctChangeMonths))

	// Treasury yields: 2Y and 10Y are required for the spread.
	log.Println("loading yield curve data from FRED")
	y2, err := p.Macro(Series2Y, rng)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %s: %w", Series2Y, err)
	}
	y10, err := p.Macro(Series10Y, rng)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %s: %w", Series10Y, err)
	}
	y2Monthly := y2.Resample(Monthly)
	y10Monthly := y10.Resample(Monthly)
	frame.Add(Col2Y, y2Monthly)
	frame.Add(Col10Y, y10Monthly)
	frame.Add(ColSpread, y10Monthly.Sub(y2Monthly))

	if y3m, err := p.Macro(Series3M, rng); err != nil {
		log.Printf("warning: could not fetch %s: %v", Series3M, err)
	} else {
		y3mMonthly := y3m.Resample(Monthly)
		frame.Add(Col3M, y3mMonthly)
		frame.Add(ColSpread3M, y10Monthly.Sub(y3mMonthly))
	}
	if y30, err := p.Macro(Series30Y, rng); err != nil {
		log.Printf("warning: could not fetch %s: %v", Series30Y, err)
	} else {
		frame.Add(Col30Y, y30.Resample(Monthly))
	}

	// Gold and silver: World Bank history continued with Yahoo futures.
	log.Println("loading gold and silver data")
	if gold, silver, err := p.loadCommodities(rng); err != nil {
		log.Printf("warning: could not load gold/silver data: %v", err)
	} else {
		frame.Add(ColGold, gold)
		frame.Add(ColSilver, silver)
		frame.Add(ColGold6M, gold.PercentChange(pctChangeMonths))
		frame.Add(ColSilver6M, silver.PercentChange(pctChangeMonths))
	}

	// NBER recession flag.
	log.Println("loading recession data from FRED")
	if rec, err := p.Macro(SeriesRecession, rng); err != nil {
		log.Printf("warning: could not fetch %s: %v", SeriesRecession, err)
	} else {
		frame.Add(ColRecession, rec.ResampleMax(Monthly))
	}

	// Keep only the rows where the chart's anchor columns are defined.
	frame = frame.DropNaN(ColNasdaq6M, ColSpread)
	if frame.Len() == 0 {
		return nil, fmt.Errorf("no overlapping data between %s and the yield spread in %s", ColNasdaq6M, rng)
	}

	dates := frame.Dates()
	log.Printf("combined dataset: %s to %s (%d months)", dates[0], dates[len(dates)-1], len(dates))
	return &Dataset{Range: NewRange(dates[0], dates[len(dates)-1]), Frame: frame}, nil
}

// loadCommodities assembles the monthly gold and silver series: World Bank
// workbook history until its last published month, then Yahoo futures closes.
func (p Providers) loadCommodities(rng Range) (gold, silver *Series, err error) {
	gold, silver, err = p.Commodities(rng)
	if err != nil {
		return nil, nil, err
	}
	last, _ := gold.Latest()
	log.Printf("world bank data ends %s, splicing recent futures from Yahoo", last)

	recent := NewRange(last, rng.To)
	if gf, err := p.Equity(SymbolGold, recent); err != nil {
		log.Printf("warning: could not fetch %s: %v", SymbolGold, err)
	} else {
		gold = gold.Splice(gf.Resample(Monthly))
	}
	if sf, err := p.Equity(SymbolSilver, recent); err != nil {
		log.Printf("warning: could not fetch %s: %v", SymbolSilver, err)
	} else {
		silver = silver.Splice(sf.Resample(Monthly))
	}
	return gold, silver, nil
}
