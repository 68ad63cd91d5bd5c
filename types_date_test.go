package macrolens

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative forms, anchored on today.
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+2w", today.Add(14), false},
		{"-6m", today.AddMonth(-6), false},
		{"+1y", NewDate(today.Year()+1, today.Month(), today.Day()), false},
		{"1d", Date{}, true}, // sign is mandatory
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_EndOf(t *testing.T) {
	tests := []struct {
		on       Date
		expected Date
	}{
		{NewDate(2024, time.February, 10), NewDate(2024, time.February, 29)}, // leap year
		{NewDate(2023, time.February, 10), NewDate(2023, time.February, 28)},
		{NewDate(2024, time.December, 1), NewDate(2024, time.December, 31)},
		{NewDate(2024, time.April, 30), NewDate(2024, time.April, 30)},
	}
	for _, tt := range tests {
		if got := tt.on.EndOf(Monthly); got != tt.expected {
			t.Errorf("EndOf(Monthly) on %s = %s, want %s", tt.on, got, tt.expected)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	on := NewDate(2024, time.March, 31)
	b, err := json.Marshal(on)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2024-03-31"` {
		t.Errorf("Marshal() = %s, want %q", b, "2024-03-31")
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != on {
		t.Errorf("round trip = %v, want %v", back, on)
	}
}

func TestDate_DaysSince(t *testing.T) {
	a := NewDate(2024, time.January, 31)
	b := NewDate(2024, time.March, 1)
	if got := b.DaysSince(a); got != 30 {
		t.Errorf("DaysSince() = %d, want 30", got)
	}
	if got := a.DaysSince(b); got != -30 {
		t.Errorf("DaysSince() reversed = %d, want -30", got)
	}
}
