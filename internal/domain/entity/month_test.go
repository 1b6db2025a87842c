package entity

import (
	"testing"
	"time"
)

func TestMonthStart(t *testing.T) {
	got := MonthStart(time.Date(2026, 3, 17, 14, 5, 3, 0, time.UTC))
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int
	}{
		{"january", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), 31},
		{"february", time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), 28},
		{"leap february", time.Date(2028, 2, 15, 0, 0, 0, 0, time.UTC), 29},
		{"april", time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), 30},
		{"december", time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.in); got != tt.want {
				t.Errorf("expected %d days, got %d", tt.want, got)
			}
		})
	}
}
