// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/application/usecase/summary"
	"github.com/household-tracker/backend/internal/domain/entity"
)

// SummaryRowResponse represents one category row of the spending summary.
type SummaryRowResponse struct {
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	CategoryIcon  string          `json:"category_icon"`
	CategoryColor string          `json:"category_color"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	BudgetAmount  decimal.Decimal `json:"budget_amount"`
	Percentage    float64         `json:"percentage"`
}

// SummaryResponse represents the monthly spending summary.
type SummaryResponse struct {
	Month       string               `json:"month"`
	Categories  []SummaryRowResponse `json:"categories"`
	TotalSpent  decimal.Decimal      `json:"total_spent"`
	TotalBudget decimal.Decimal      `json:"total_budget"`
}

// InsightResponse represents one generated insight.
type InsightResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// InsightListResponse represents the response for listing insights.
type InsightListResponse struct {
	Month    string            `json:"month"`
	Insights []InsightResponse `json:"insights"`
}

// ToSummaryResponse converts summary output to a SummaryResponse DTO.
func ToSummaryResponse(output *summary.GetSpendingSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		Month:       output.Month.Format("2006-01"),
		Categories:  make([]SummaryRowResponse, len(output.Rows)),
		TotalSpent:  output.TotalSpent,
		TotalBudget: output.TotalBudget,
	}
	for i, row := range output.Rows {
		response.Categories[i] = SummaryRowResponse{
			CategoryID:    row.CategoryID.String(),
			CategoryName:  row.CategoryName,
			CategoryIcon:  row.CategoryIcon,
			CategoryColor: row.CategoryColor,
			TotalSpent:    row.TotalSpent,
			BudgetAmount:  row.BudgetAmount,
			Percentage:    row.Percentage,
		}
	}
	return response
}

// ToInsightListResponse converts insights to an InsightListResponse DTO.
func ToInsightListResponse(month string, insights []entity.Insight) InsightListResponse {
	response := InsightListResponse{
		Month:    month,
		Insights: make([]InsightResponse, len(insights)),
	}
	for i, insight := range insights {
		response.Insights[i] = InsightResponse{
			Type:        string(insight.Type),
			Title:       insight.Title,
			Description: insight.Description,
		}
	}
	return response
}
