// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/application/usecase/recurring"
	"github.com/household-tracker/backend/internal/domain/entity"
)

// CreateRecurringExpenseRequest represents the request body for template creation.
type CreateRecurringExpenseRequest struct {
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required,min=1,max=200"`
	Notes       string          `json:"notes,omitempty" binding:"omitempty,max=500"`
	DayOfMonth  int             `json:"day_of_month" binding:"required,min=1,max=28"`
}

// UpdateRecurringExpenseRequest represents the request body for template update.
type UpdateRecurringExpenseRequest struct {
	CategoryID  *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty" binding:"omitempty,min=1,max=200"`
	Notes       *string          `json:"notes,omitempty" binding:"omitempty,max=500"`
	DayOfMonth  *int             `json:"day_of_month,omitempty" binding:"omitempty,min=1,max=28"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// RecurringExpenseResponse represents a single template in API responses.
type RecurringExpenseResponse struct {
	ID                 string            `json:"id"`
	CategoryID         string            `json:"category_id"`
	Category           *CategoryResponse `json:"category,omitempty"`
	Amount             decimal.Decimal   `json:"amount"`
	Description        string            `json:"description"`
	Notes              string            `json:"notes,omitempty"`
	DayOfMonth         int               `json:"day_of_month"`
	IsActive           bool              `json:"is_active"`
	State              string            `json:"state"`
	NextOccurrence     string            `json:"next_occurrence,omitempty"`
	LastGeneratedMonth *string           `json:"last_generated_month,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// RecurringExpenseListResponse represents the response for listing templates.
type RecurringExpenseListResponse struct {
	RecurringExpenses []RecurringExpenseResponse `json:"recurring_expenses"`
}

// ToRecurringExpenseResponse converts a template and its state to a response DTO.
func ToRecurringExpenseResponse(template *entity.RecurringExpense, state entity.GenerationState) RecurringExpenseResponse {
	response := RecurringExpenseResponse{
		ID:          template.ID.String(),
		CategoryID:  template.CategoryID.String(),
		Amount:      template.Amount,
		Description: template.Description,
		Notes:       template.Notes,
		DayOfMonth:  template.DayOfMonth,
		IsActive:    template.IsActive,
		State:       string(state),
		CreatedAt:   template.CreatedAt,
		UpdatedAt:   template.UpdatedAt,
	}

	if template.LastGeneratedMonth != nil {
		month := template.LastGeneratedMonth.Format("2006-01")
		response.LastGeneratedMonth = &month
	}

	return response
}

// ToRecurringExpenseListResponse converts listed templates to a response DTO.
func ToRecurringExpenseListResponse(items []recurring.RecurringExpenseItem) RecurringExpenseListResponse {
	response := RecurringExpenseListResponse{
		RecurringExpenses: make([]RecurringExpenseResponse, len(items)),
	}
	for i, item := range items {
		itemResponse := ToRecurringExpenseResponse(item.RecurringExpense, item.State)
		itemResponse.NextOccurrence = item.NextOccurrence.Format("2006-01-02")
		if item.Category != nil {
			categoryResponse := ToCategoryResponse(item.Category)
			itemResponse.Category = &categoryResponse
		}
		response.RecurringExpenses[i] = itemResponse
	}
	return response
}
