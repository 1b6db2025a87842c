package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *summaryCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return server, &summaryCache{client: client}
}

func testSummary() *entity.SpendingSummary {
	return &entity.SpendingSummary{
		Rows: []entity.SpendingSummaryRow{
			{
				CategoryID:    uuid.New(),
				CategoryName:  "Groceries",
				CategoryIcon:  "🛒",
				CategoryColor: "#22C55E",
				TotalSpent:    decimal.RequireFromString("120.50"),
				BudgetAmount:  decimal.RequireFromString("200.00"),
				Percentage:    60.25,
			},
		},
		TotalSpent:  decimal.RequireFromString("135.50"),
		TotalBudget: decimal.RequireFromString("200.00"),
	}
}

func TestSummaryCacheRoundTrip(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()
	householdID := uuid.New()
	month := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	summary := testSummary()

	if err := cache.Set(ctx, householdID, month, summary); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, householdID, month)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || len(got.Rows) != 1 {
		t.Fatalf("expected a summary with 1 row, got %v", got)
	}
	if got.Rows[0].CategoryID != summary.Rows[0].CategoryID {
		t.Errorf("expected category %s, got %s", summary.Rows[0].CategoryID, got.Rows[0].CategoryID)
	}
	if !got.Rows[0].TotalSpent.Equal(summary.Rows[0].TotalSpent) {
		t.Errorf("expected spent %s, got %s", summary.Rows[0].TotalSpent, got.Rows[0].TotalSpent)
	}
	if got.Rows[0].Percentage != summary.Rows[0].Percentage {
		t.Errorf("expected percentage %v, got %v", summary.Rows[0].Percentage, got.Rows[0].Percentage)
	}
	if !got.TotalSpent.Equal(summary.TotalSpent) {
		t.Errorf("expected total spent %s, got %s", summary.TotalSpent, got.TotalSpent)
	}
	if !got.TotalBudget.Equal(summary.TotalBudget) {
		t.Errorf("expected total budget %s, got %s", summary.TotalBudget, got.TotalBudget)
	}
}

func TestSummaryCacheMiss(t *testing.T) {
	_, cache := newTestCache(t)

	got, err := cache.Get(context.Background(), uuid.New(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil summary on miss, got %v", got)
	}
}

func TestSummaryCacheInvalidate(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()
	householdID := uuid.New()
	month := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if err := cache.Set(ctx, householdID, month, testSummary()); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Invalidate(ctx, householdID, month); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	got, err := cache.Get(ctx, householdID, month)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss after invalidation")
	}
}

func TestSummaryCacheMonthsAreIndependent(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()
	householdID := uuid.New()
	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	if err := cache.Set(ctx, householdID, march, testSummary()); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, householdID, april)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Errorf("april must not share march's entry")
	}
}

func TestSummaryCacheCorruptEntryIsMiss(t *testing.T) {
	server, cache := newTestCache(t)
	ctx := context.Background()
	householdID := uuid.New()
	month := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	server.Set(summaryKey(householdID, month), "not json")

	got, err := cache.Get(ctx, householdID, month)
	if err != nil {
		t.Fatalf("corrupt entry must not error: %v", err)
	}
	if got != nil {
		t.Errorf("corrupt entry must read as a miss")
	}
}
