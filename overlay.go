package macrolens

import "fmt"

// This file derives shaded-region intervals from indicator conditions on a
// series: yield-curve inversion periods (negative spread) and NBER recession
// periods (recession flag raised).

// maxIntervalGap is the largest distance between two consecutive kept
// observations that still belong to the same interval. Monthly observations
// sit ~30 days apart, so 45 days tolerates month-length jitter while splitting
// genuinely distinct episodes.
const maxIntervalGap = 45

// Interval marks a contiguous period where a condition held, boundaries included.
type Interval struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// Days returns the interval duration in days, boundaries included.
func (i Interval) Days() int { return i.To.DaysSince(i.From) + 1 }

func (i Interval) String() string { return fmt.Sprintf("%s to %s", i.From, i.To) }

// FindIntervals scans the series chronologically and returns the ordered,
// non-overlapping intervals of consecutive observations where keep(value) is
// true. Two kept observations more than maxGap days apart start distinct
// intervals. NaN observations never satisfy keep.
func FindIntervals(s *Series, keep func(float64) bool, maxGap int) []Interval {
	var intervals []Interval
	var cur *Interval
	for on, v := range s.Values() {
		if !keep(v) { // NaN comparisons are false, so NaN points are skipped here too
			continue
		}
		if cur != nil && on.DaysSince(cur.To) <= maxGap {
			cur.To = on
			continue
		}
		if cur != nil {
			intervals = append(intervals, *cur)
		}
		cur = &Interval{From: on, To: on}
	}
	if cur != nil {
		intervals = append(intervals, *cur)
	}
	return intervals
}

// Inversions returns the yield-curve inversion periods: the intervals where
// the spread series is negative.
func Inversions(spread *Series) []Interval {
	return FindIntervals(spread, func(v float64) bool { return v < 0 }, maxIntervalGap)
}

// Recessions returns the NBER recession periods: the intervals where the
// recession flag series is raised.
func Recessions(flag *Series) []Interval {
	return FindIntervals(flag, func(v float64) bool { return v >= 1 }, maxIntervalGap)
}
