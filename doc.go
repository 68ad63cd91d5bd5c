// Package macrolens computes macro-economic correlation datasets.
//
// It models date-indexed series (equity indices, commodity prices, Treasury
// yields, the NBER recession flag), aligns them on a common month-end index,
// and derives rolling percent changes, yield spreads, rolling correlations and
// the recession/inversion intervals used as chart overlays.
//
// Data comes from Yahoo Finance, FRED and the World Bank commodity workbook;
// the subpackages yahoo, fred and worldbank implement the fetchers, and the
// mlens command ties everything together.
package macrolens
