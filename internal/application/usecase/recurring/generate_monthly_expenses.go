// Package recurring contains recurring expense use cases.
package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
)

// GenerateMonthlyExpensesOutput represents the result of a generation run.
type GenerateMonthlyExpensesOutput struct {
	Month               time.Time
	GeneratedExpenseIDs []uuid.UUID
	SkippedCount        int
	FailureCount        int
}

// GenerateMonthlyExpensesUseCase turns due recurring expense templates into
// concrete expenses. Safe to run any number of times per day: the
// last-generated-month watermark on each template makes generation
// at-most-once per calendar month.
type GenerateMonthlyExpensesUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
	cache         adapter.SummaryCache
	clock         adapter.Clock
	logger        *slog.Logger
}

// NewGenerateMonthlyExpensesUseCase creates a new GenerateMonthlyExpensesUseCase instance.
func NewGenerateMonthlyExpensesUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	cache adapter.SummaryCache,
	clock adapter.Clock,
	logger *slog.Logger,
) *GenerateMonthlyExpensesUseCase {
	return &GenerateMonthlyExpensesUseCase{
		recurringRepo: recurringRepo,
		cache:         cache,
		clock:         clock,
		logger:        logger,
	}
}

// Execute runs one generation batch against the current date.
func (uc *GenerateMonthlyExpensesUseCase) Execute(ctx context.Context) (*GenerateMonthlyExpensesOutput, error) {
	now := uc.clock.Now().UTC()
	month := entity.MonthStart(now)

	templates, err := uc.recurringRepo.FindDueForGeneration(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to find due recurring expenses: %w", err)
	}

	output := &GenerateMonthlyExpensesOutput{
		Month:               month,
		GeneratedExpenseIDs: []uuid.UUID{},
	}

	for _, template := range templates {
		// Re-check the watermark; the due query is a coarse filter.
		if !template.IsActive || template.GeneratedFor(month) {
			output.SkippedCount++
			continue
		}

		dueDate := template.DueDate(now)
		if dueDate.After(entity.DayStart(now)) {
			// Day-of-month not reached yet; a later run this month picks it up.
			output.SkippedCount++
			continue
		}

		expense := buildGeneratedExpense(template, dueDate)

		if err := uc.recurringRepo.CreateGeneratedExpense(ctx, expense, template.ID, month); err != nil {
			// One bad template must not sink the rest of the batch.
			output.FailureCount++
			uc.logger.Error("failed to generate expense from recurring template",
				"recurring_expense_id", template.ID,
				"household_id", template.HouseholdID,
				"error", err,
			)
			continue
		}

		output.GeneratedExpenseIDs = append(output.GeneratedExpenseIDs, expense.ID)

		// The generated expense changes the household's summary for the
		// month, just like an interactive write.
		if err := uc.cache.Invalidate(ctx, template.HouseholdID, month); err != nil {
			uc.logger.Warn("summary cache invalidation failed",
				"household_id", template.HouseholdID,
				"error", err,
			)
		}
	}

	run := entity.NewGenerationRun(month, output.GeneratedExpenseIDs, output.FailureCount)
	if err := uc.recurringRepo.RecordGenerationRun(ctx, run); err != nil {
		uc.logger.Warn("failed to record generation run",
			"month", month.Format("2006-01"),
			"error", err,
		)
	}

	uc.logger.Info("recurring expense generation finished",
		"month", month.Format("2006-01"),
		"generated", len(output.GeneratedExpenseIDs),
		"skipped", output.SkippedCount,
		"failed", output.FailureCount,
	)

	return output, nil
}

// buildGeneratedExpense creates the concrete expense for a template, tagging
// its notes with the recurring marker.
func buildGeneratedExpense(template *entity.RecurringExpense, dueDate time.Time) *entity.Expense {
	notes := entity.RecurringMarker
	if template.Notes != "" {
		notes = template.Notes + " " + entity.RecurringMarker
	}

	return entity.NewExpense(
		template.HouseholdID,
		template.UserID,
		template.CategoryID,
		template.Amount,
		template.Description,
		notes,
		dueDate,
		"",
	)
}
