package macrolens

import (
	"fmt"
	"math"
	"slices"
)

// Frame is a table of named columns outer-joined on a common date index.
// Every column spans the whole index; a date missing from the original series
// is NaN in the joined column.
type Frame struct {
	dates []Date
	names []string
	cols  map[string][]float64
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{cols: make(map[string][]float64)}
}

// Add outer-joins a new column into the frame under the given name. The frame
// index grows to the union of the existing index and the series dates, and all
// columns are re-aligned on it. Adding an existing name overwrites the column.
func (f *Frame) Add(name string, s *Series) *Frame {
	// Union of the current index and the new series dates.
	union := slices.Clone(f.dates)
	for on := range s.Values() {
		if _, found := slices.BinarySearchFunc(union, on, func(d, t Date) int { return d.Compare(t) }); !found {
			union = append(union, on)
			slices.SortFunc(union, func(a, b Date) int { return a.Compare(b) })
		}
	}

	// Re-align existing columns on the grown index.
	if len(union) != len(f.dates) {
		for _, n := range f.names {
			old := f.cols[n]
			col := make([]float64, len(union))
			for i, on := range union {
				if j, found := slices.BinarySearchFunc(f.dates, on, func(d, t Date) int { return d.Compare(t) }); found {
					col[i] = old[j]
				} else {
					col[i] = math.NaN()
				}
			}
			f.cols[n] = col
		}
		f.dates = union
	}

	col := make([]float64, len(f.dates))
	for i, on := range f.dates {
		if v, ok := s.Get(on); ok {
			col[i] = v
		} else {
			col[i] = math.NaN()
		}
	}
	if !slices.Contains(f.names, name) {
		f.names = append(f.names, name)
	}
	f.cols[name] = col
	return f
}

// Names returns the column names in insertion order.
func (f *Frame) Names() []string { return slices.Clone(f.names) }

// Has reports whether the frame holds a column with that name.
func (f *Frame) Has(name string) bool { return slices.Contains(f.names, name) }

// Dates returns the shared date index.
func (f *Frame) Dates() []Date { return slices.Clone(f.dates) }

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.dates) }

// Column returns the named column as a series on the frame index.
func (f *Frame) Column(name string) (*Series, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("no column %q in frame", name)
	}
	s := NewSeries()
	for i, on := range f.dates {
		s.Append(on, col[i])
	}
	return s, nil
}

// At returns the value of a column at a date (NaN if the column or row is missing).
func (f *Frame) At(name string, on Date) float64 {
	col, ok := f.cols[name]
	if !ok {
		return math.NaN()
	}
	if i, found := slices.BinarySearchFunc(f.dates, on, func(d, t Date) int { return d.Compare(t) }); found {
		return col[i]
	}
	return math.NaN()
}

// DropNaN returns a new frame keeping only the rows where every one of the
// required columns holds a valid value. With no argument, all columns are
// required.
func (f *Frame) DropNaN(required ...string) *Frame {
	if len(required) == 0 {
		required = f.names
	}
	out := NewFrame()
	out.names = slices.Clone(f.names)

	var keep []int
	for i := range f.dates {
		ok := true
		for _, n := range required {
			if col, exists := f.cols[n]; !exists || math.IsNaN(col[i]) {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, i)
		}
	}

	out.dates = make([]Date, len(keep))
	for j, i := range keep {
		out.dates[j] = f.dates[i]
	}
	for _, n := range f.names {
		col := make([]float64, len(keep))
		for j, i := range keep {
			col[j] = f.cols[n][i]
		}
		out.cols[n] = col
	}
	return out
}
