// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for setting a budget.
type SetBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Month      string          `json:"month" binding:"required"` // YYYY-MM
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Month      string          `json:"month"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Month   string           `json:"month"`
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID.String(),
		CategoryID: budget.CategoryID.String(),
		Amount:     budget.Amount,
		Month:      budget.Month.Format("2006-01"),
	}
}

// ToBudgetListResponse converts domain budgets to a BudgetListResponse.
func ToBudgetListResponse(month string, budgets []*entity.Budget) BudgetListResponse {
	response := BudgetListResponse{
		Month:   month,
		Budgets: make([]BudgetResponse, len(budgets)),
	}
	for i, budget := range budgets {
		response.Budgets[i] = ToBudgetResponse(budget)
	}
	return response
}
