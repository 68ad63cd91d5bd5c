package macrolens

import "math"

// This file contains the derived metrics computed over series: calendar
// resampling, rolling percent change, pointwise spreads and rolling
// correlation. All computations use plain float64 arithmetic, a missing
// observation is a NaN and propagates.

// Resample returns a new series sampled at the end of each period, holding the
// last observed value of the period. The resulting index is contiguous from
// the first to the last observed period: periods with no observation carry NaN
// so that positional arithmetic (percent change, rolling windows) stays
// calendar-aligned.
func (s *Series) Resample(p Period) *Series {
	return s.resample(p, func(_, v float64) float64 { return v })
}

// ResampleMax is like Resample but keeps the maximum value observed in each
// period. It is meant for indicator flags (e.g. a 0/1 recession flag) where a
// single flagged day marks the whole period.
func (s *Series) ResampleMax(p Period) *Series {
	return s.resample(p, math.Max)
}

// resample folds all observations of a period into one value with
// combine(acc, v), seeded with the first observation of the period.
func (s *Series) resample(p Period, combine func(acc, v float64) float64) *Series {
	out := NewSeries()
	if s.Len() == 0 {
		return out
	}

	acc := make(map[Date]float64)
	for on, v := range s.Values() {
		if math.IsNaN(v) {
			continue
		}
		end := on.EndOf(p)
		if prev, ok := acc[end]; ok {
			acc[end] = combine(prev, v)
		} else {
			acc[end] = v
		}
	}

	first, _ := s.First()
	last, _ := s.Latest()
	for d := first.EndOf(p); !d.After(last.EndOf(p)); d = d.Add(1).EndOf(p) {
		if v, ok := acc[d]; ok {
			out.Append(d, v)
		} else {
			out.Append(d, math.NaN())
		}
	}
	return out
}

// PercentChange returns the rolling percent change over the given number of
// positions: out[t] = (v[t]/v[t-periods] - 1) * 100. It is meant to run on a
// resampled, calendar-contiguous series. The first 'periods' points are
// undefined and omitted; a NaN at either end of a window propagates. A zero
// base also yields NaN instead of an infinity, since only NaN survives the
// dataset's JSON encoding.
func (s *Series) PercentChange(periods int) *Series {
	out := NewSeries()
	for i := periods; i < len(s.days); i++ {
		cur, base := s.values[i], s.values[i-periods]
		if math.IsNaN(cur) || math.IsNaN(base) || base == 0 {
			out.Append(s.days[i], math.NaN())
			continue
		}
		out.Append(s.days[i], (cur/base-1)*100)
	}
	return out
}

// Sub returns the pointwise difference s - o on the dates present in both
// series. NaN on either side propagates.
func (s *Series) Sub(o *Series) *Series {
	out := NewSeries()
	for on, v := range s.Values() {
		w, ok := o.Get(on)
		if !ok {
			continue
		}
		out.Append(on, v-w)
	}
	return out
}

// Splice extends s with the points of 'recent' that are strictly after the
// last date of s. It is used to continue a discontinued historical source
// with a live one.
func (s *Series) Splice(recent *Series) *Series {
	out := NewSeries()
	for on, v := range s.Values() {
		out.Append(on, v)
	}
	last, _ := s.Latest()
	for on, v := range recent.Values() {
		if s.Len() == 0 || on.After(last) {
			if !math.IsNaN(v) {
				out.Append(on, v)
			}
		}
	}
	return out
}

// RollingCorrelation computes the Pearson correlation of x and y over a
// trailing window of observations. The two series are first paired on their
// common dates; the correlation at a date is defined only when the trailing
// window holds exactly 'window' valid (non-NaN) pairs, otherwise the point is
// NaN. A defined value always lies in [-1, 1].
func RollingCorrelation(x, y *Series, window int) *Series {
	out := NewSeries()
	if window < 2 {
		return out
	}

	// Pair on common dates, keeping chronological order.
	var days []Date
	var xs, ys []float64
	for on, xv := range x.Values() {
		if yv, ok := y.Get(on); ok {
			days = append(days, on)
			xs = append(xs, xv)
			ys = append(ys, yv)
		}
	}

	for i := range days {
		if i < window-1 {
			out.Append(days[i], math.NaN())
			continue
		}
		out.Append(days[i], pearson(xs[i-window+1:i+1], ys[i-window+1:i+1]))
	}
	return out
}

// pearson computes the Pearson correlation coefficient of two equal-length
// samples. It returns NaN if any value is NaN or a sample has zero variance.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sx, sy float64
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			return math.NaN()
		}
		sx += xs[i]
		sy += ys[i]
	}
	mx, my := sx/n, sy/n

	var cov, vx, vy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return math.NaN()
	}
	r := cov / math.Sqrt(vx*vy)
	// Guard against floating-point drift outside [-1, 1].
	return math.Max(-1, math.Min(1, r))
}
