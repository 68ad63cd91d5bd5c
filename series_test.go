package macrolens

import (
	"math"
	"testing"
	"time"
)

func TestSeries_Append(t *testing.T) {
	s := NewSeries()
	s.Append(NewDate(2024, time.March, 31), 3)
	s.Append(NewDate(2024, time.January, 31), 1)
	s.Append(NewDate(2024, time.February, 29), 2)

	// Points come out in chronological order regardless of insertion order.
	want := 1.0
	for _, v := range s.Values() {
		if v != want {
			t.Errorf("Values() out of order: got %v, want %v", v, want)
		}
		want++
	}

	// Appending on an existing date overwrites.
	s.Append(NewDate(2024, time.February, 29), 20)
	if v, ok := s.Get(NewDate(2024, time.February, 29)); !ok || v != 20 {
		t.Errorf("Get() after overwrite = %v, %v, want 20, true", v, ok)
	}
	if s.Len() != 3 {
		t.Errorf("Len() after overwrite = %d, want 3", s.Len())
	}
}

func TestSeries_ValueAsOf(t *testing.T) {
	s := NewSeries()
	s.Append(NewDate(2024, time.January, 31), 1)
	s.Append(NewDate(2024, time.March, 31), 3)

	tests := []struct {
		on       Date
		expected float64
		ok       bool
	}{
		{NewDate(2024, time.January, 31), 1, true},  // exact
		{NewDate(2024, time.February, 15), 1, true}, // most recent before
		{NewDate(2024, time.April, 1), 3, true},     // after the last point
		{NewDate(2023, time.December, 31), 0, false},
	}
	for _, tt := range tests {
		got, ok := s.ValueAsOf(tt.on)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("ValueAsOf(%s) = %v, %v, want %v, %v", tt.on, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestSeries_Clip(t *testing.T) {
	s := NewSeries()
	for i := 1; i <= 5; i++ {
		s.Append(NewDate(2024, time.January, i), float64(i))
	}
	clipped := s.Clip(NewRange(NewDate(2024, time.January, 2), NewDate(2024, time.January, 4)))
	if clipped.Len() != 3 {
		t.Fatalf("Clip() Len = %d, want 3", clipped.Len())
	}
	first, v := clipped.First()
	if first != NewDate(2024, time.January, 2) || v != 2 {
		t.Errorf("Clip() First = %s, %v, want 2024-01-02, 2", first, v)
	}
}

func TestSeries_Valid(t *testing.T) {
	s := NewSeries()
	s.Append(NewDate(2024, time.January, 31), 1)
	s.Append(NewDate(2024, time.February, 29), math.NaN())
	s.Append(NewDate(2024, time.March, 31), 3)
	if got := s.Valid(); got != 2 {
		t.Errorf("Valid() = %d, want 2", got)
	}
}
