// Package summary contains spending summary use cases.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// Thresholds for budget insight generation, as percentages of budget.
const (
	overBudgetThreshold = 100.0
	nearLimitThreshold  = 80.0
)

// GetInsightsInput represents the input for getting spending insights.
type GetInsightsInput struct {
	HouseholdID uuid.UUID
	Month       time.Time
}

// GetInsightsOutput represents the output of getting spending insights.
type GetInsightsOutput struct {
	Month    time.Time
	Insights []entity.Insight
}

// GetInsightsUseCase derives budget insights from the monthly spending summary.
type GetInsightsUseCase struct {
	summaryUseCase *GetSpendingSummaryUseCase
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(summaryUseCase *GetSpendingSummaryUseCase) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		summaryUseCase: summaryUseCase,
	}
}

// Execute generates insights for a household's spending in a month.
func (uc *GetInsightsUseCase) Execute(
	ctx context.Context,
	input GetInsightsInput,
) (*GetInsightsOutput, error) {
	summaryOutput, err := uc.summaryUseCase.Execute(ctx, GetSpendingSummaryInput{
		HouseholdID: input.HouseholdID,
		Month:       input.Month,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get spending summary: %w", err)
	}

	insights := make([]entity.Insight, 0, 4)

	for _, row := range summaryOutput.Rows {
		if !row.BudgetAmount.IsPositive() {
			continue
		}
		switch {
		case row.Percentage > overBudgetThreshold:
			insights = append(insights, entity.Insight{
				Type:  entity.InsightTypeWarning,
				Title: fmt.Sprintf("%s is over budget", row.CategoryName),
				Description: fmt.Sprintf(
					"You've spent %s of your %s budget (%.0f%%). Consider reviewing upcoming purchases in this category.",
					row.TotalSpent.StringFixed(2), row.BudgetAmount.StringFixed(2), row.Percentage,
				),
			})
		case row.Percentage > nearLimitThreshold:
			insights = append(insights, entity.Insight{
				Type:  entity.InsightTypeWarning,
				Title: fmt.Sprintf("%s is close to its limit", row.CategoryName),
				Description: fmt.Sprintf(
					"You've used %.0f%% of this month's %s budget.",
					row.Percentage, row.CategoryName,
				),
			})
		}
	}

	if len(summaryOutput.Rows) > 0 && summaryOutput.Rows[0].TotalSpent.IsPositive() {
		top := summaryOutput.Rows[0]
		insights = append(insights, entity.Insight{
			Type:  entity.InsightTypeTrend,
			Title: fmt.Sprintf("Top spending: %s", top.CategoryName),
			Description: fmt.Sprintf(
				"%s is your biggest category this month at %s.",
				top.CategoryName, top.TotalSpent.StringFixed(2),
			),
		})
	}

	insights = append(insights, entity.Insight{
		Type:        entity.InsightTypeTip,
		Title:       "Review recurring expenses",
		Description: "Subscriptions add up quietly. Check your recurring expenses for services you no longer use.",
	})

	return &GetInsightsOutput{
		Month:    entity.MonthStart(input.Month),
		Insights: insights,
	}, nil
}
