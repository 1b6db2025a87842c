package expense

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	return r.expenses[id], nil
}

func (r *fakeExpenseRepo) FindByHousehold(context.Context, uuid.UUID, adapter.ExpenseFilter) ([]*entity.ExpenseWithCategory, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) FindByHouseholdAndMonth(context.Context, uuid.UUID, time.Time) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, category := range categories {
		repo.categories[category.ID] = category
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) FindByHousehold(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) ExistsByNameInHousehold(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}

func (r *fakeCategoryRepo) Update(context.Context, *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(context.Context, uuid.UUID) error        { return nil }

// fakeSummaryCache records invalidated months.
type fakeSummaryCache struct {
	invalidated []time.Time
}

func (c *fakeSummaryCache) Get(context.Context, uuid.UUID, time.Time) (*entity.SpendingSummary, error) {
	return nil, nil
}

func (c *fakeSummaryCache) Set(context.Context, uuid.UUID, time.Time, *entity.SpendingSummary) error {
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context, _ uuid.UUID, month time.Time) error {
	c.invalidated = append(c.invalidated, month)
	return nil
}

func sharedCategory() *entity.Category {
	return &entity.Category{
		ID:        uuid.New(),
		Name:      "Groceries",
		IsDefault: true,
	}
}

func TestCreateExpense(t *testing.T) {
	householdID := uuid.New()
	category := sharedCategory()
	repo := newFakeExpenseRepo()
	cache := &fakeSummaryCache{}

	uc := NewCreateExpenseUseCase(repo, newFakeCategoryRepo(category), cache, slog.Default())

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		HouseholdID: householdID,
		UserID:      uuid.New(),
		CategoryID:  category.ID,
		Amount:      decimal.RequireFromString("12.34"),
		Description: "  weekly shop  ",
		Date:        time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Expense.Description != "weekly shop" {
		t.Errorf("expected trimmed description, got %q", output.Expense.Description)
	}
	if want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC); !output.Expense.Date.Equal(want) {
		t.Errorf("expected date truncated to %s, got %s", want, output.Expense.Date)
	}
	if len(repo.expenses) != 1 {
		t.Errorf("expected the expense to be persisted")
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected 1 cache invalidation, got %d", len(cache.invalidated))
	}
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !cache.invalidated[0].Equal(want) {
		t.Errorf("expected invalidation for %s, got %s", want, cache.invalidated[0])
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	householdID := uuid.New()
	category := sharedCategory()
	otherHousehold := uuid.New()
	privateCategory := entity.NewCategory("Private", "", "#FF0000", otherHousehold)

	tests := []struct {
		name     string
		input    CreateExpenseInput
		wantCode domainerror.ExpenseErrorCode
	}{
		{
			name: "missing description",
			input: CreateExpenseInput{
				HouseholdID: householdID,
				CategoryID:  category.ID,
				Amount:      decimal.RequireFromString("5.00"),
			},
			wantCode: domainerror.ErrCodeMissingExpenseFields,
		},
		{
			name: "missing category",
			input: CreateExpenseInput{
				HouseholdID: householdID,
				Description: "lunch",
				Amount:      decimal.RequireFromString("5.00"),
			},
			wantCode: domainerror.ErrCodeMissingExpenseFields,
		},
		{
			name: "negative amount",
			input: CreateExpenseInput{
				HouseholdID: householdID,
				CategoryID:  category.ID,
				Description: "lunch",
				Amount:      decimal.RequireFromString("-1.00"),
			},
			wantCode: domainerror.ErrCodeNegativeAmount,
		},
		{
			name: "description too long",
			input: CreateExpenseInput{
				HouseholdID: householdID,
				CategoryID:  category.ID,
				Description: strings.Repeat("x", MaxDescriptionLength+1),
				Amount:      decimal.RequireFromString("5.00"),
			},
			wantCode: domainerror.ErrCodeDescriptionTooLong,
		},
		{
			name: "unknown category",
			input: CreateExpenseInput{
				HouseholdID: householdID,
				CategoryID:  uuid.New(),
				Description: "lunch",
				Amount:      decimal.RequireFromString("5.00"),
			},
			wantCode: domainerror.ErrCodeExpCategoryNotFound,
		},
		{
			name: "another household's category",
			input: CreateExpenseInput{
				HouseholdID: householdID,
				CategoryID:  privateCategory.ID,
				Description: "lunch",
				Amount:      decimal.RequireFromString("5.00"),
			},
			wantCode: domainerror.ErrCodeExpCategoryNotShared,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateExpenseUseCase(
				newFakeExpenseRepo(),
				newFakeCategoryRepo(category, privateCategory),
				&fakeSummaryCache{},
				slog.Default(),
			)

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			expErr, ok := err.(*domainerror.ExpenseError)
			if !ok {
				t.Fatalf("expected ExpenseError, got %T", err)
			}
			if expErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, expErr.Code)
			}
		})
	}
}

func TestUpdateExpenseCrossMonthInvalidatesBothMonths(t *testing.T) {
	householdID := uuid.New()
	category := sharedCategory()
	repo := newFakeExpenseRepo()
	cache := &fakeSummaryCache{}

	existing := entity.NewExpense(
		householdID,
		uuid.New(),
		category.ID,
		decimal.RequireFromString("30.00"),
		"gym",
		"",
		time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC),
		"",
	)
	repo.expenses[existing.ID] = existing

	uc := NewUpdateExpenseUseCase(repo, newFakeCategoryRepo(category), cache, slog.Default())

	newDate := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), UpdateExpenseInput{
		ID:          existing.ID,
		HouseholdID: householdID,
		Date:        &newDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cache.invalidated) != 2 {
		t.Fatalf("expected both months invalidated, got %d", len(cache.invalidated))
	}
	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	seen := map[time.Time]bool{}
	for _, month := range cache.invalidated {
		seen[month] = true
	}
	if !seen[march] || !seen[april] {
		t.Errorf("expected march and april invalidated, got %v", cache.invalidated)
	}
}

func TestUpdateExpenseWrongHousehold(t *testing.T) {
	category := sharedCategory()
	repo := newFakeExpenseRepo()

	existing := entity.NewExpense(
		uuid.New(),
		uuid.New(),
		category.ID,
		decimal.RequireFromString("30.00"),
		"gym",
		"",
		time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC),
		"",
	)
	repo.expenses[existing.ID] = existing

	uc := NewUpdateExpenseUseCase(repo, newFakeCategoryRepo(category), &fakeSummaryCache{}, slog.Default())

	description := "changed"
	_, err := uc.Execute(context.Background(), UpdateExpenseInput{
		ID:          existing.ID,
		HouseholdID: uuid.New(),
		Description: &description,
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	expErr, ok := err.(*domainerror.ExpenseError)
	if !ok || expErr.Code != domainerror.ErrCodeExpenseNotInHousehold {
		t.Errorf("expected ErrCodeExpenseNotInHousehold, got %v", err)
	}
}
