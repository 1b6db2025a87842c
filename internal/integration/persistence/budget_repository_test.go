package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/domain/entity"
	"github.com/household-tracker/backend/internal/integration/persistence/model"
)

func storedBudget(householdID, categoryID uuid.UUID, amount string, month time.Time) *entity.Budget {
	return entity.NewBudget(householdID, categoryID, decimal.RequireFromString(amount), month)
}

func TestBudgetUpsertReplacesAmount(t *testing.T) {
	db := openTestDB(t, &model.BudgetModel{})
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	householdID := uuid.New()
	categoryID := uuid.New()
	month := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	if err := repo.Upsert(ctx, storedBudget(householdID, categoryID, "300.00", month)); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := repo.Upsert(ctx, storedBudget(householdID, categoryID, "250.00", month)); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	budgets, err := repo.FindByHouseholdAndMonth(ctx, householdID, month)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(budgets) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(budgets))
	}
	if !budgets[0].Amount.Equal(decimal.RequireFromString("250.00")) {
		t.Errorf("expected amount 250.00, got %s", budgets[0].Amount)
	}
}

func TestBudgetUpsertRevivesDeletedBudget(t *testing.T) {
	db := openTestDB(t, &model.BudgetModel{})
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	householdID := uuid.New()
	categoryID := uuid.New()
	month := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	first := storedBudget(householdID, categoryID, "100.00", month)
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	budgets, err := repo.FindByHouseholdAndMonth(ctx, householdID, month)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(budgets) != 0 {
		t.Fatalf("expected the deleted budget to be gone, got %d", len(budgets))
	}

	if err := repo.Upsert(ctx, storedBudget(householdID, categoryID, "200.00", month)); err != nil {
		t.Fatalf("upsert after delete failed: %v", err)
	}

	budgets, err = repo.FindByHouseholdAndMonth(ctx, householdID, month)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(budgets) != 1 {
		t.Fatalf("expected 1 budget after re-setting a deleted budget, got %d", len(budgets))
	}
	if !budgets[0].Amount.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("expected amount 200.00, got %s", budgets[0].Amount)
	}
}
