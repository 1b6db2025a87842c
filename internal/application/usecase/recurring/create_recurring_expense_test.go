package recurring

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

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

func TestCreateRecurringExpense(t *testing.T) {
	householdID := uuid.New()
	category := &entity.Category{ID: uuid.New(), Name: "Utilities", IsDefault: true}
	repo := newFakeRecurringRepo()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := NewCreateRecurringExpenseUseCase(repo, newFakeCategoryRepo(category), fixedClock{now: now})

	output, err := uc.Execute(context.Background(), CreateRecurringExpenseInput{
		HouseholdID: householdID,
		UserID:      uuid.New(),
		CategoryID:  category.ID,
		Amount:      decimal.RequireFromString("80.00"),
		Description: "Electricity",
		DayOfMonth:  20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.RecurringExpense.IsActive {
		t.Errorf("new templates must start active")
	}
	if output.RecurringExpense.LastGeneratedMonth != nil {
		t.Errorf("new templates must have a nil watermark")
	}
	if output.State != entity.GenerationStatePending {
		t.Errorf("expected pending state before the due day, got %s", output.State)
	}
	if len(repo.templates) != 1 {
		t.Errorf("expected the template to be persisted")
	}
}

func TestCreateRecurringExpenseValidation(t *testing.T) {
	householdID := uuid.New()
	category := &entity.Category{ID: uuid.New(), Name: "Utilities", IsDefault: true}
	otherHousehold := uuid.New()
	privateCategory := entity.NewCategory("Private", "", "#FF0000", otherHousehold)

	tests := []struct {
		name     string
		input    CreateRecurringExpenseInput
		wantCode domainerror.RecurringErrorCode
	}{
		{
			name: "missing description",
			input: CreateRecurringExpenseInput{
				HouseholdID: householdID,
				CategoryID:  category.ID,
				Amount:      decimal.RequireFromString("10.00"),
				DayOfMonth:  5,
			},
			wantCode: domainerror.ErrCodeMissingRecFields,
		},
		{
			name: "negative amount",
			input: CreateRecurringExpenseInput{
				HouseholdID: householdID,
				CategoryID:  category.ID,
				Description: "Rent",
				Amount:      decimal.RequireFromString("-10.00"),
				DayOfMonth:  5,
			},
			wantCode: domainerror.ErrCodeRecNegativeAmount,
		},
		{
			name: "day of month too low",
			input: CreateRecurringExpenseInput{
				HouseholdID: householdID,
				CategoryID:  category.ID,
				Description: "Rent",
				Amount:      decimal.RequireFromString("10.00"),
				DayOfMonth:  0,
			},
			wantCode: domainerror.ErrCodeInvalidDayOfMonth,
		},
		{
			name: "day of month too high",
			input: CreateRecurringExpenseInput{
				HouseholdID: householdID,
				CategoryID:  category.ID,
				Description: "Rent",
				Amount:      decimal.RequireFromString("10.00"),
				DayOfMonth:  29,
			},
			wantCode: domainerror.ErrCodeInvalidDayOfMonth,
		},
		{
			name: "another household's category",
			input: CreateRecurringExpenseInput{
				HouseholdID: householdID,
				CategoryID:  privateCategory.ID,
				Description: "Rent",
				Amount:      decimal.RequireFromString("10.00"),
				DayOfMonth:  5,
			},
			wantCode: domainerror.ErrCodeRecCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateRecurringExpenseUseCase(
				newFakeRecurringRepo(),
				newFakeCategoryRepo(category, privateCategory),
				fixedClock{now: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
			)

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			recErr, ok := err.(*domainerror.RecurringError)
			if !ok {
				t.Fatalf("expected RecurringError, got %T", err)
			}
			if recErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, recErr.Code)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		day       int
		watermark *time.Time
		now       time.Time
		want      time.Time
	}{
		{
			name: "later this month",
			day:  20,
			now:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "due today",
			day:  10,
			now:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already passed rolls to next month",
			day:  5,
			now:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "already generated rolls to next month",
			day:       20,
			watermark: &march,
			now:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			want:      time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := testTemplate(tt.day, "")
			template.LastGeneratedMonth = tt.watermark

			if got := nextOccurrence(template, tt.now); !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
