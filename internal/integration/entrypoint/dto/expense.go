// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required,min=1,max=200"`
	Notes       string          `json:"notes,omitempty" binding:"omitempty,max=500"`
	Date        string          `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	ReceiptURL  string          `json:"receipt_url,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	CategoryID  *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty" binding:"omitempty,min=1,max=200"`
	Notes       *string          `json:"notes,omitempty" binding:"omitempty,max=500"`
	Date        *string          `json:"date,omitempty"` // YYYY-MM-DD
	ReceiptURL  *string          `json:"receipt_url,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Notes       string            `json:"notes,omitempty"`
	Date        string            `json:"date"`
	ReceiptURL  string            `json:"receipt_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		UserID:      expense.UserID.String(),
		CategoryID:  expense.CategoryID.String(),
		Amount:      expense.Amount,
		Description: expense.Description,
		Notes:       expense.Notes,
		Date:        expense.Date.Format("2006-01-02"),
		ReceiptURL:  expense.ReceiptURL,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ToExpenseListResponse converts expenses with categories to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.ExpenseWithCategory) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, len(expenses)),
	}
	for i, item := range expenses {
		expenseResponse := ToExpenseResponse(item.Expense)
		if item.Category != nil {
			categoryResponse := ToCategoryResponse(item.Category)
			expenseResponse.Category = &categoryResponse
		}
		response.Expenses[i] = expenseResponse
	}
	return response
}
