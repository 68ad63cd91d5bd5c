package macrolens

import (
	"math"
	"testing"
	"time"
)

func TestInversions(t *testing.T) {
	// A negative run, a recovery, then a one-month dip.
	spread := monthly(2024, time.January, 0.5, -0.1, -0.2, 0.3, math.NaN(), 0.2, 0.1, -0.5)

	got := Inversions(spread)
	expected := []Interval{
		{NewDate(2024, time.February, 29), NewDate(2024, time.March, 31)},
		{NewDate(2024, time.August, 31), NewDate(2024, time.August, 31)},
	}
	if len(got) != len(expected) {
		t.Fatalf("Inversions() = %v, want %v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("Inversions()[%d] = %s, want %s", i, got[i], expected[i])
		}
	}
}

func TestFindIntervals_GapSplits(t *testing.T) {
	// Consecutive months merge, a multi-month hole splits.
	s := NewSeries()
	s.Append(NewDate(2024, time.January, 31), -1)
	s.Append(NewDate(2024, time.February, 29), -1)
	s.Append(NewDate(2024, time.June, 30), -1)

	got := FindIntervals(s, func(v float64) bool { return v < 0 }, maxIntervalGap)
	if len(got) != 2 {
		t.Fatalf("FindIntervals() = %v, want 2 intervals", got)
	}
	if got[0].To != NewDate(2024, time.February, 29) {
		t.Errorf("first interval = %s, want it closed at 2024-02-29", got[0])
	}
	if got[1].From != NewDate(2024, time.June, 30) {
		t.Errorf("second interval = %s, want it opened at 2024-06-30", got[1])
	}
}

func TestFindIntervals_OrderedNonOverlapping(t *testing.T) {
	s := monthly(2024, time.January, -1, 1, -1, -1, 1, -1, 1, -1)
	got := FindIntervals(s, func(v float64) bool { return v < 0 }, maxIntervalGap)
	for i := 1; i < len(got); i++ {
		if !got[i].From.After(got[i-1].To) {
			t.Errorf("intervals overlap or out of order: %s then %s", got[i-1], got[i])
		}
	}
}

func TestRecessions(t *testing.T) {
	flag := monthly(2024, time.January, 0, 1, 1, 0, math.NaN(), 1)
	got := Recessions(flag)
	expected := []Interval{
		{NewDate(2024, time.February, 29), NewDate(2024, time.March, 31)},
		{NewDate(2024, time.June, 30), NewDate(2024, time.June, 30)},
	}
	if len(got) != len(expected) {
		t.Fatalf("Recessions() = %v, want %v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("Recessions()[%d] = %s, want %s", i, got[i], expected[i])
		}
	}
}

func TestInterval_Days(t *testing.T) {
	i := Interval{NewDate(2024, time.January, 1), NewDate(2024, time.January, 31)}
	if got := i.Days(); got != 31 {
		t.Errorf("Days() = %d, want 31", got)
	}
}
