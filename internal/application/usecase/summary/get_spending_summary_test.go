package summary

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
)

type fakeCategoryRepo struct {
	categories []*entity.Category
	calls      int
}

func (r *fakeCategoryRepo) Create(context.Context, *entity.Category) error { return nil }

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, category := range r.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindByHousehold(context.Context, uuid.UUID) ([]*entity.Category, error) {
	r.calls++
	return r.categories, nil
}

func (r *fakeCategoryRepo) ExistsByNameInHousehold(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}

func (r *fakeCategoryRepo) Update(context.Context, *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(context.Context, uuid.UUID) error        { return nil }

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(context.Context, *entity.Expense) error { return nil }

func (r *fakeExpenseRepo) FindByID(context.Context, uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) FindByHousehold(context.Context, uuid.UUID, adapter.ExpenseFilter) ([]*entity.ExpenseWithCategory, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) FindByHouseholdAndMonth(context.Context, uuid.UUID, time.Time) ([]*entity.Expense, error) {
	return r.expenses, nil
}

func (r *fakeExpenseRepo) Update(context.Context, *entity.Expense) error { return nil }
func (r *fakeExpenseRepo) Delete(context.Context, uuid.UUID) error       { return nil }

type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (r *fakeBudgetRepo) Upsert(context.Context, *entity.Budget) error { return nil }

func (r *fakeBudgetRepo) FindByID(context.Context, uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}

func (r *fakeBudgetRepo) FindByHouseholdAndMonth(context.Context, uuid.UUID, time.Time) ([]*entity.Budget, error) {
	return r.budgets, nil
}

func (r *fakeBudgetRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakeSummaryCache struct {
	entries      map[string]*entity.SpendingSummary
	getErr       error
	sets         int
	invalidation int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[string]*entity.SpendingSummary)}
}

func cacheKey(householdID uuid.UUID, month time.Time) string {
	return householdID.String() + month.Format("2006-01")
}

func (c *fakeSummaryCache) Get(_ context.Context, householdID uuid.UUID, month time.Time) (*entity.SpendingSummary, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[cacheKey(householdID, month)], nil
}

func (c *fakeSummaryCache) Set(_ context.Context, householdID uuid.UUID, month time.Time, summary *entity.SpendingSummary) error {
	c.sets++
	c.entries[cacheKey(householdID, month)] = summary
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context, householdID uuid.UUID, month time.Time) error {
	c.invalidation++
	delete(c.entries, cacheKey(householdID, month))
	return nil
}

func newSummaryUseCase(
	categoryRepo *fakeCategoryRepo,
	expenseRepo *fakeExpenseRepo,
	budgetRepo *fakeBudgetRepo,
	cache *fakeSummaryCache,
) *GetSpendingSummaryUseCase {
	return NewGetSpendingSummaryUseCase(categoryRepo, expenseRepo, budgetRepo, cache, slog.Default())
}

func TestGetSpendingSummaryComputesAndCaches(t *testing.T) {
	category := testCategory("Groceries")
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
	expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{testExpense(category.ID, "80.00")}}
	budgetRepo := &fakeBudgetRepo{budgets: []*entity.Budget{testBudget(category.ID, "100.00")}}
	cache := newFakeSummaryCache()

	uc := newSummaryUseCase(categoryRepo, expenseRepo, budgetRepo, cache)

	output, err := uc.Execute(context.Background(), GetSpendingSummaryInput{
		HouseholdID: uuid.New(),
		Month:       time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !output.Month.Equal(want) {
		t.Errorf("expected month normalized to %s, got %s", want, output.Month)
	}
	if len(output.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(output.Rows))
	}
	if output.Rows[0].Percentage != 80 {
		t.Errorf("expected 80%% usage, got %v", output.Rows[0].Percentage)
	}
	if !output.TotalSpent.Equal(decimal.RequireFromString("80.00")) {
		t.Errorf("expected total spent 80.00, got %s", output.TotalSpent)
	}
	if cache.sets != 1 {
		t.Errorf("expected the computed summary to be cached")
	}
}

func TestGetSpendingSummaryServesFromCache(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	cache := newFakeSummaryCache()
	householdID := uuid.New()
	month := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cache.entries[cacheKey(householdID, month)] = &entity.SpendingSummary{
		Rows: []entity.SpendingSummaryRow{
			{CategoryID: uuid.New(), CategoryName: "Cached", TotalSpent: decimal.RequireFromString("10.00")},
		},
		TotalSpent: decimal.RequireFromString("10.00"),
	}

	uc := newSummaryUseCase(categoryRepo, &fakeExpenseRepo{}, &fakeBudgetRepo{}, cache)

	output, err := uc.Execute(context.Background(), GetSpendingSummaryInput{
		HouseholdID: householdID,
		Month:       month,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if categoryRepo.calls != 0 {
		t.Errorf("cache hit must not touch the repositories")
	}
	if len(output.Rows) != 1 || output.Rows[0].CategoryName != "Cached" {
		t.Errorf("expected the cached rows to be returned")
	}
	if !output.TotalSpent.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("expected the cached total to be returned, got %s", output.TotalSpent)
	}
}

func TestGetSpendingSummaryTotalsCoverDeletedCategories(t *testing.T) {
	category := testCategory("Groceries")
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
	expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
		testExpense(category.ID, "50.00"),
		// This expense's category was deleted after it was recorded.
		testExpense(uuid.New(), "30.00"),
	}}

	uc := newSummaryUseCase(categoryRepo, expenseRepo, &fakeBudgetRepo{}, newFakeSummaryCache())

	output, err := uc.Execute(context.Background(), GetSpendingSummaryInput{
		HouseholdID: uuid.New(),
		Month:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Rows) != 1 {
		t.Fatalf("expected 1 row for the surviving category, got %d", len(output.Rows))
	}
	if !output.TotalSpent.Equal(decimal.RequireFromString("80.00")) {
		t.Errorf("expected total spent 80.00 across all expenses, got %s", output.TotalSpent)
	}
}

func TestGetSpendingSummarySurvivesCacheFailure(t *testing.T) {
	category := testCategory("Groceries")
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
	expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{testExpense(category.ID, "15.00")}}
	cache := newFakeSummaryCache()
	cache.getErr = errors.New("connection refused")

	uc := newSummaryUseCase(categoryRepo, expenseRepo, &fakeBudgetRepo{}, cache)

	output, err := uc.Execute(context.Background(), GetSpendingSummaryInput{
		HouseholdID: uuid.New(),
		Month:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("cache failure must not fail the summary: %v", err)
	}
	if len(output.Rows) != 1 {
		t.Errorf("expected the summary to be recomputed, got %d rows", len(output.Rows))
	}
}

func TestGetInsights(t *testing.T) {
	overBudget := testCategory("Dining")
	nearLimit := testCategory("Transport")
	healthy := testCategory("Groceries")

	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{overBudget, nearLimit, healthy}}
	expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
		testExpense(overBudget.ID, "150.00"),
		testExpense(nearLimit.ID, "85.00"),
		testExpense(healthy.ID, "20.00"),
	}}
	budgetRepo := &fakeBudgetRepo{budgets: []*entity.Budget{
		testBudget(overBudget.ID, "100.00"),
		testBudget(nearLimit.ID, "100.00"),
		testBudget(healthy.ID, "100.00"),
	}}

	summaryUC := newSummaryUseCase(categoryRepo, expenseRepo, budgetRepo, newFakeSummaryCache())
	uc := NewGetInsightsUseCase(summaryUC)

	output, err := uc.Execute(context.Background(), GetInsightsInput{
		HouseholdID: uuid.New(),
		Month:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var warnings, trends, tips int
	for _, insight := range output.Insights {
		switch insight.Type {
		case entity.InsightTypeWarning:
			warnings++
		case entity.InsightTypeTrend:
			trends++
		case entity.InsightTypeTip:
			tips++
		}
	}

	if warnings != 2 {
		t.Errorf("expected 2 warnings (over budget and near limit), got %d", warnings)
	}
	if trends != 1 {
		t.Errorf("expected 1 trend insight, got %d", trends)
	}
	if tips != 1 {
		t.Errorf("expected 1 tip, got %d", tips)
	}

	// The trend must point at the highest-spending category.
	for _, insight := range output.Insights {
		if insight.Type == entity.InsightTypeTrend && !strings.Contains(insight.Title, "Dining") {
			t.Errorf("expected trend about Dining, got %q", insight.Title)
		}
	}
}
