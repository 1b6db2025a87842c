// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/usecase/recurring"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
	"github.com/household-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/household-tracker/backend/internal/integration/entrypoint/middleware"
)

// RecurringExpenseController handles recurring expense template endpoints.
type RecurringExpenseController struct {
	createUseCase *recurring.CreateRecurringExpenseUseCase
	listUseCase   *recurring.ListRecurringExpensesUseCase
	updateUseCase *recurring.UpdateRecurringExpenseUseCase
	deleteUseCase *recurring.DeleteRecurringExpenseUseCase
}

// NewRecurringExpenseController creates a new recurring expense controller instance.
func NewRecurringExpenseController(
	createUseCase *recurring.CreateRecurringExpenseUseCase,
	listUseCase *recurring.ListRecurringExpensesUseCase,
	updateUseCase *recurring.UpdateRecurringExpenseUseCase,
	deleteUseCase *recurring.DeleteRecurringExpenseUseCase,
) *RecurringExpenseController {
	return &RecurringExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /recurring-expenses requests.
func (c *RecurringExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateRecurringExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateRecurringExpenseInput{
		HouseholdID: householdID,
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Notes:       req.Notes,
		DayOfMonth:  req.DayOfMonth,
	})
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringExpenseResponse(output.RecurringExpense, output.State))
}

// List handles GET /recurring-expenses requests.
func (c *RecurringExpenseController) List(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRecurringExpensesInput{
		HouseholdID: householdID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recurring expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringExpenseListResponse(output.RecurringExpenses))
}

// Update handles PATCH /recurring-expenses/:id requests.
func (c *RecurringExpenseController) Update(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	recurringID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring expense ID format",
		})
		return
	}

	var req dto.UpdateRecurringExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := recurring.UpdateRecurringExpenseInput{
		ID:          recurringID,
		HouseholdID: householdID,
		Amount:      req.Amount,
		Description: req.Description,
		Notes:       req.Notes,
		DayOfMonth:  req.DayOfMonth,
		IsActive:    req.IsActive,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringExpenseResponse(output.RecurringExpense, output.State))
}

// Delete handles DELETE /recurring-expenses/:id requests.
func (c *RecurringExpenseController) Delete(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	recurringID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringExpenseInput{
		ID:          recurringID,
		HouseholdID: householdID,
	}); err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRecurringError maps recurring expense errors to HTTP responses.
func (c *RecurringExpenseController) handleRecurringError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurringError
	if errors.As(err, &recErr) {
		ctx.JSON(c.getStatusCodeForRecurringError(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecurringError maps recurring error codes to HTTP status codes.
func (c *RecurringExpenseController) getStatusCodeForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRecurringNotInHousehold:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidDayOfMonth,
		domainerror.ErrCodeRecNegativeAmount,
		domainerror.ErrCodeRecCategoryNotFound,
		domainerror.ErrCodeMissingRecFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
