package macrolens

import (
	"slices"
	"testing"
	"time"
)

func TestRange_Contains(t *testing.T) {
	r := NewRange(NewDate(2024, time.January, 10), NewDate(2024, time.January, 20))

	if !r.Contains(NewDate(2024, time.January, 10)) {
		t.Errorf("Contains() should include the From boundary")
	}
	if !r.Contains(NewDate(2024, time.January, 20)) {
		t.Errorf("Contains() should include the To boundary")
	}
	if r.Contains(NewDate(2024, time.January, 21)) {
		t.Errorf("Contains() should exclude dates after To")
	}
}

func TestNewRange_Swaps(t *testing.T) {
	from, to := NewDate(2024, time.March, 1), NewDate(2024, time.January, 1)
	r := NewRange(from, to)
	if r.From != to || r.To != from {
		t.Errorf("NewRange() = %s, want boundaries swapped", r)
	}
}

func TestRange_Months(t *testing.T) {
	r := NewRange(NewDate(2024, time.January, 15), NewDate(2024, time.March, 10))
	got := slices.Collect(r.Months())
	expected := []Date{
		NewDate(2024, time.January, 31),
		NewDate(2024, time.February, 29),
		NewDate(2024, time.March, 31),
	}
	if !slices.Equal(got, expected) {
		t.Errorf("Months() = %v, want %v", got, expected)
	}
}
