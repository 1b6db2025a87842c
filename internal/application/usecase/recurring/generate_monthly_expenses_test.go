package recurring

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/domain/entity"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeRecurringRepo implements adapter.RecurringExpenseRepository in memory
// with the same watermark semantics as the SQL implementation.
type fakeRecurringRepo struct {
	templates  []*entity.RecurringExpense
	generated  []*entity.Expense
	runs       []*entity.GenerationRun
	failForIDs map[uuid.UUID]error
}

func newFakeRecurringRepo(templates ...*entity.RecurringExpense) *fakeRecurringRepo {
	return &fakeRecurringRepo{
		templates:  templates,
		failForIDs: make(map[uuid.UUID]error),
	}
}

func (r *fakeRecurringRepo) Create(_ context.Context, recurring *entity.RecurringExpense) error {
	r.templates = append(r.templates, recurring)
	return nil
}

func (r *fakeRecurringRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RecurringExpense, error) {
	for _, template := range r.templates {
		if template.ID == id {
			return template, nil
		}
	}
	return nil, nil
}

func (r *fakeRecurringRepo) FindByHousehold(_ context.Context, householdID uuid.UUID) ([]*entity.RecurringExpenseWithCategory, error) {
	var result []*entity.RecurringExpenseWithCategory
	for _, template := range r.templates {
		if template.HouseholdID == householdID {
			result = append(result, &entity.RecurringExpenseWithCategory{RecurringExpense: template})
		}
	}
	return result, nil
}

func (r *fakeRecurringRepo) FindDueForGeneration(_ context.Context, month time.Time) ([]*entity.RecurringExpense, error) {
	var due []*entity.RecurringExpense
	for _, template := range r.templates {
		if template.IsActive && !template.GeneratedFor(month) {
			due = append(due, template)
		}
	}
	return due, nil
}

func (r *fakeRecurringRepo) CreateGeneratedExpense(_ context.Context, expense *entity.Expense, recurringID uuid.UUID, month time.Time) error {
	if err := r.failForIDs[recurringID]; err != nil {
		return err
	}
	for _, template := range r.templates {
		if template.ID == recurringID {
			watermark := entity.MonthStart(month)
			template.LastGeneratedMonth = &watermark
			r.generated = append(r.generated, expense)
			return nil
		}
	}
	return errors.New("template not found")
}

func (r *fakeRecurringRepo) RecordGenerationRun(_ context.Context, run *entity.GenerationRun) error {
	r.runs = append(r.runs, run)
	return nil
}

func (r *fakeRecurringRepo) Update(_ context.Context, recurring *entity.RecurringExpense) error {
	for i, template := range r.templates {
		if template.ID == recurring.ID {
			r.templates[i] = recurring
			return nil
		}
	}
	return nil
}

func (r *fakeRecurringRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, template := range r.templates {
		if template.ID == id {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}
	return nil
}

func testTemplate(dayOfMonth int, notes string) *entity.RecurringExpense {
	return entity.NewRecurringExpense(
		uuid.New(),
		uuid.New(),
		uuid.New(),
		decimal.RequireFromString("49.90"),
		"Internet",
		notes,
		dayOfMonth,
	)
}

// fakeSummaryCache records which households had their summary dropped.
type fakeSummaryCache struct {
	invalidated []uuid.UUID
}

func (c *fakeSummaryCache) Get(context.Context, uuid.UUID, time.Time) (*entity.SpendingSummary, error) {
	return nil, nil
}

func (c *fakeSummaryCache) Set(context.Context, uuid.UUID, time.Time, *entity.SpendingSummary) error {
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context, householdID uuid.UUID, _ time.Time) error {
	c.invalidated = append(c.invalidated, householdID)
	return nil
}

func newGenerator(repo *fakeRecurringRepo, now time.Time) *GenerateMonthlyExpensesUseCase {
	return NewGenerateMonthlyExpensesUseCase(repo, &fakeSummaryCache{}, fixedClock{now: now}, slog.Default())
}

func TestGenerateCreatesExpenseOnDueDay(t *testing.T) {
	template := testTemplate(15, "")
	repo := newFakeRecurringRepo(template)
	uc := newGenerator(repo, time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC))

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.GeneratedExpenseIDs) != 1 {
		t.Fatalf("expected 1 generated expense, got %d", len(output.GeneratedExpenseIDs))
	}
	expense := repo.generated[0]
	if !expense.Amount.Equal(template.Amount) {
		t.Errorf("expected amount %s, got %s", template.Amount, expense.Amount)
	}
	if expense.Description != template.Description {
		t.Errorf("expected description %q, got %q", template.Description, expense.Description)
	}
	wantDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !expense.Date.Equal(wantDate) {
		t.Errorf("expected date %s, got %s", wantDate, expense.Date)
	}
	if expense.Notes != entity.RecurringMarker {
		t.Errorf("expected notes %q, got %q", entity.RecurringMarker, expense.Notes)
	}
	if template.LastGeneratedMonth == nil {
		t.Fatal("watermark must be advanced after generation")
	}
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !template.LastGeneratedMonth.Equal(want) {
		t.Errorf("expected watermark %s, got %s", want, template.LastGeneratedMonth)
	}
}

func TestGenerateAppendsMarkerToExistingNotes(t *testing.T) {
	template := testTemplate(1, "fiber plan")
	repo := newFakeRecurringRepo(template)
	uc := newGenerator(repo, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "fiber plan " + entity.RecurringMarker
	if got := repo.generated[0].Notes; got != want {
		t.Errorf("expected notes %q, got %q", want, got)
	}
}

func TestGenerateSkipsBeforeDueDay(t *testing.T) {
	template := testTemplate(20, "")
	repo := newFakeRecurringRepo(template)
	uc := newGenerator(repo, time.Date(2026, 3, 19, 23, 59, 0, 0, time.UTC))

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.GeneratedExpenseIDs) != 0 {
		t.Errorf("expected no generated expenses before the due day")
	}
	if output.SkippedCount != 1 {
		t.Errorf("expected 1 skipped, got %d", output.SkippedCount)
	}
	if template.LastGeneratedMonth != nil {
		t.Errorf("watermark must not move for a pending template")
	}
}

func TestGenerateIsIdempotentWithinMonth(t *testing.T) {
	template := testTemplate(5, "")
	repo := newFakeRecurringRepo(template)
	uc := newGenerator(repo, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		if _, err := uc.Execute(context.Background()); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
	}

	if len(repo.generated) != 1 {
		t.Errorf("expected exactly 1 expense across repeated runs, got %d", len(repo.generated))
	}
}

func TestGenerateNextMonthAfterWatermark(t *testing.T) {
	template := testTemplate(5, "")
	repo := newFakeRecurringRepo(template)

	first := newGenerator(repo, time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC))
	if _, err := first.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := newGenerator(repo, time.Date(2026, 4, 5, 8, 0, 0, 0, time.UTC))
	if _, err := second.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.generated) != 2 {
		t.Fatalf("expected one expense per month, got %d", len(repo.generated))
	}
	if want := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC); !template.LastGeneratedMonth.Equal(want) {
		t.Errorf("expected watermark %s, got %s", want, template.LastGeneratedMonth)
	}
}

func TestGenerateSkipsInactiveTemplates(t *testing.T) {
	template := testTemplate(1, "")
	template.IsActive = false
	repo := newFakeRecurringRepo(template)
	uc := newGenerator(repo, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.GeneratedExpenseIDs) != 0 {
		t.Errorf("inactive template must not generate")
	}
}

func TestGenerateFailureDoesNotSinkBatch(t *testing.T) {
	broken := testTemplate(1, "")
	healthy := testTemplate(1, "")
	repo := newFakeRecurringRepo(broken, healthy)
	repo.failForIDs[broken.ID] = errors.New("insert failed")
	uc := newGenerator(repo, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.FailureCount != 1 {
		t.Errorf("expected 1 failure, got %d", output.FailureCount)
	}
	if len(output.GeneratedExpenseIDs) != 1 {
		t.Errorf("expected the healthy template to generate, got %d", len(output.GeneratedExpenseIDs))
	}
	if broken.LastGeneratedMonth != nil {
		t.Errorf("failed template must keep a nil watermark so a later run retries it")
	}
}

func TestGenerateInvalidatesSummaryCache(t *testing.T) {
	generated := testTemplate(5, "")
	pending := testTemplate(20, "")
	repo := newFakeRecurringRepo(generated, pending)
	cache := &fakeSummaryCache{}
	uc := NewGenerateMonthlyExpensesUseCase(
		repo,
		cache,
		fixedClock{now: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		slog.Default(),
	)

	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cache.invalidated) != 1 {
		t.Fatalf("expected 1 cache invalidation, got %d", len(cache.invalidated))
	}
	if cache.invalidated[0] != generated.HouseholdID {
		t.Errorf("expected the generated template's household to be invalidated")
	}
}

func TestGenerateRecordsRun(t *testing.T) {
	repo := newFakeRecurringRepo(testTemplate(1, ""))
	uc := newGenerator(repo, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.runs) != 1 {
		t.Fatalf("expected 1 generation run record, got %d", len(repo.runs))
	}
	run := repo.runs[0]
	if len(run.GeneratedExpenseIDs) != 1 {
		t.Errorf("expected 1 generated id in run record, got %d", len(run.GeneratedExpenseIDs))
	}
}
