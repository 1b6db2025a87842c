package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/household-tracker/backend/internal/domain/entity"
	"github.com/household-tracker/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func newTestDB(t *testing.T) *gorm.DB {
	return openTestDB(t,
		&model.RecurringExpenseModel{},
		&model.ExpenseModel{},
		&model.GenerationRunModel{},
	)
}

func storedTemplate(t *testing.T, db *gorm.DB, dayOfMonth int) *entity.RecurringExpense {
	t.Helper()

	template := entity.NewRecurringExpense(
		uuid.New(),
		uuid.New(),
		uuid.New(),
		decimal.RequireFromString("49.90"),
		"Internet",
		"",
		dayOfMonth,
	)
	if err := db.Create(model.RecurringExpenseFromEntity(template)).Error; err != nil {
		t.Fatalf("failed to store template: %v", err)
	}
	return template
}

func generatedExpense(template *entity.RecurringExpense, date time.Time) *entity.Expense {
	return entity.NewExpense(
		template.HouseholdID,
		template.UserID,
		template.CategoryID,
		template.Amount,
		template.Description,
		entity.RecurringMarker,
		date,
		"",
	)
}

func TestCreateGeneratedExpenseAdvancesWatermark(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecurringExpenseRepository(db)
	ctx := context.Background()

	template := storedTemplate(t, db, 15)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	err := repo.CreateGeneratedExpense(ctx, generatedExpense(template, date), template.ID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByID(ctx, template.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	monthStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if stored.LastGeneratedMonth == nil || !stored.LastGeneratedMonth.Equal(monthStart) {
		t.Errorf("expected watermark %s, got %v", monthStart, stored.LastGeneratedMonth)
	}

	var expenseCount int64
	db.Model(&model.ExpenseModel{}).Count(&expenseCount)
	if expenseCount != 1 {
		t.Errorf("expected 1 generated expense, got %d", expenseCount)
	}
}

func TestCreateGeneratedExpenseRefusesSecondClaim(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecurringExpenseRepository(db)
	ctx := context.Background()

	template := storedTemplate(t, db, 15)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	if err := repo.CreateGeneratedExpense(ctx, generatedExpense(template, date), template.ID, date); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	err := repo.CreateGeneratedExpense(ctx, generatedExpense(template, date), template.ID, date)
	if err == nil {
		t.Fatal("expected the second claim for the same month to fail")
	}

	var expenseCount int64
	db.Model(&model.ExpenseModel{}).Count(&expenseCount)
	if expenseCount != 1 {
		t.Errorf("expected the second expense to be rolled back, got %d rows", expenseCount)
	}
}

func TestFindDueForGeneration(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecurringExpenseRepository(db)
	ctx := context.Background()

	due := storedTemplate(t, db, 10)

	paused := storedTemplate(t, db, 10)
	db.Model(&model.RecurringExpenseModel{}).
		Where("id = ?", paused.ID).
		Update("is_active", false)

	covered := storedTemplate(t, db, 10)
	monthStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	db.Model(&model.RecurringExpenseModel{}).
		Where("id = ?", covered.ID).
		Update("last_generated_month", monthStart)

	stale := storedTemplate(t, db, 10)
	february := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	db.Model(&model.RecurringExpenseModel{}).
		Where("id = ?", stale.ID).
		Update("last_generated_month", february)

	templates, err := repo.FindDueForGeneration(ctx, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := make(map[uuid.UUID]bool, len(templates))
	for _, template := range templates {
		ids[template.ID] = true
	}
	if len(templates) != 2 || !ids[due.ID] || !ids[stale.ID] {
		t.Errorf("expected the unclaimed and stale templates to be due, got %d templates", len(templates))
	}
}

func TestRecordGenerationRun(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecurringExpenseRepository(db)

	run := entity.NewGenerationRun(
		time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		[]uuid.UUID{uuid.New(), uuid.New()},
		1,
	)
	if err := repo.RecordGenerationRun(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	db.Model(&model.GenerationRunModel{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 run record, got %d", count)
	}
}
