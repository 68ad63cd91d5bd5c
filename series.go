package macrolens

import (
	"iter"
	"math"
	"slices"
	"sort"
)

// Series stores a chronological sequence of float64 values, each associated
// with a specific date. It ensures that dates are unique and the sequence is
// always sorted. A value may be NaN to mark a known-missing observation.
type Series struct {
	days   []Date
	values []float64
}

// NewSeries returns an empty series.
func NewSeries() *Series { return &Series{} }

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.days) }

// Latest returns the latest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) Latest() (day Date, value float64) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return s.days[last], s.values[last]
}

// First returns the earliest date and value in the series.
func (s *Series) First() (day Date, value float64) {
	if len(s.days) == 0 {
		return Date{}, 0
	}
	return s.days[0], s.values[0]
}

// chronological is a private implementation to make this series chronologically sorted.
type chronological struct{ *Series }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (s *Series) sort() { sort.Sort(chronological{s}) }

// Append adds a point to the series.
//
// An existing value at that date is overwritten.
func (s *Series) Append(on Date, v float64) *Series {
	if i := slices.Index(s.days, on); i >= 0 {
		// Found a point at that exact same day.
		// We choose to replace, because it gives higher priority to the last data.
		s.values[i] = v
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, v)
	s.sort()
	return s
}

// Get returns the value at 'day' and true, or zero value and false.
func (s *Series) Get(day Date) (float64, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.values[i], true
	}
	return 0, false
}

// ValueAsOf returns the value on a given day, or the most recent value before it.
// It returns the value and true if found, otherwise it returns zero and false.
func (s *Series) ValueAsOf(day Date) (float64, bool) {
	// The days slice is sorted, so we can use binary search.
	i, found := slices.BinarySearchFunc(s.days, day, func(d, t Date) int { return d.Compare(t) })
	if found {
		return s.values[i], true
	}
	// Not found. `i` is the index where `day` would be inserted, so the last
	// entry before the target date is at `i-1`.
	if i == 0 {
		return 0, false
	}
	return s.values[i-1], true
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (s *Series) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Clip returns a new series restricted to the given range.
func (s *Series) Clip(r Range) *Series {
	out := NewSeries()
	for i, on := range s.days {
		if r.Contains(on) {
			out.days = append(out.days, on)
			out.values = append(out.values, s.values[i])
		}
	}
	return out
}

// Valid returns the number of non-NaN points in the series.
func (s *Series) Valid() int {
	n := 0
	for _, v := range s.values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}
