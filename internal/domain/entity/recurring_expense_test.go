package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestTemplate(dayOfMonth int) *RecurringExpense {
	return NewRecurringExpense(
		uuid.New(),
		uuid.New(),
		uuid.New(),
		decimal.RequireFromString("9.99"),
		"Streaming",
		"",
		dayOfMonth,
	)
}

func TestDueDateClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name    string
		day     int
		now     time.Time
		wantDay int
	}{
		{
			name:    "regular day",
			day:     15,
			now:     time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			wantDay: 15,
		},
		{
			name:    "day 28 in february",
			day:     28,
			now:     time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			wantDay: 28,
		},
		{
			name:    "day beyond february clamps to 28",
			day:     31,
			now:     time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			wantDay: 28,
		},
		{
			name:    "day beyond leap february clamps to 29",
			day:     31,
			now:     time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC),
			wantDay: 29,
		},
		{
			name:    "day 31 in april clamps to 30",
			day:     31,
			now:     time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
			wantDay: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := newTestTemplate(tt.day)
			due := template.DueDate(tt.now)

			if due.Day() != tt.wantDay {
				t.Errorf("expected day %d, got %d", tt.wantDay, due.Day())
			}
			if due.Month() != tt.now.Month() || due.Year() != tt.now.Year() {
				t.Errorf("due date must stay within now's month, got %s", due)
			}
		})
	}
}

func TestStateAt(t *testing.T) {
	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		day       int
		watermark *time.Time
		now       time.Time
		want      GenerationState
	}{
		{
			name: "pending before the due day",
			day:  20,
			now:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			want: GenerationStatePending,
		},
		{
			name: "eligible on the due day",
			day:  20,
			now:  time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			want: GenerationStateEligible,
		},
		{
			name: "eligible after the due day",
			day:  20,
			now:  time.Date(2026, 3, 25, 8, 0, 0, 0, time.UTC),
			want: GenerationStateEligible,
		},
		{
			name:      "generated once the watermark covers the month",
			day:       20,
			watermark: &march,
			now:       time.Date(2026, 3, 25, 8, 0, 0, 0, time.UTC),
			want:      GenerationStateGenerated,
		},
		{
			name:      "stale watermark resets to pending next month",
			day:       20,
			watermark: &february,
			now:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			want:      GenerationStatePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := newTestTemplate(tt.day)
			template.LastGeneratedMonth = tt.watermark

			if got := template.StateAt(tt.now); got != tt.want {
				t.Errorf("expected state %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGeneratedFor(t *testing.T) {
	template := newTestTemplate(5)

	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if template.GeneratedFor(march) {
		t.Error("nil watermark must never cover a month")
	}

	template.LastGeneratedMonth = &march
	if !template.GeneratedFor(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("watermark at month start must cover the whole month")
	}
	if template.GeneratedFor(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("watermark must not cover the following month")
	}
}
