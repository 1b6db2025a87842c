// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-tracker/backend/internal/application/usecase/household"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
	"github.com/household-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/household-tracker/backend/internal/integration/entrypoint/middleware"
)

// HouseholdController handles household endpoints.
type HouseholdController struct {
	createUseCase     *household.CreateHouseholdUseCase
	getUseCase        *household.GetHouseholdUseCase
	joinUseCase       *household.JoinHouseholdUseCase
	leaveUseCase      *household.LeaveHouseholdUseCase
	sendInviteUseCase *household.SendInviteUseCase
}

// NewHouseholdController creates a new household controller instance.
func NewHouseholdController(
	createUseCase *household.CreateHouseholdUseCase,
	getUseCase *household.GetHouseholdUseCase,
	joinUseCase *household.JoinHouseholdUseCase,
	leaveUseCase *household.LeaveHouseholdUseCase,
	sendInviteUseCase *household.SendInviteUseCase,
) *HouseholdController {
	return &HouseholdController{
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		joinUseCase:       joinUseCase,
		leaveUseCase:      leaveUseCase,
		sendInviteUseCase: sendInviteUseCase,
	}
}

// Create handles POST /households requests.
func (c *HouseholdController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateHouseholdRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeHouseholdNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), household.CreateHouseholdInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHouseholdResponse(output.Household))
}

// Get handles GET /households/me requests.
func (c *HouseholdController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), household.GetHouseholdInput{
		UserID: userID,
	})
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHouseholdWithMembersResponse(output.Household))
}

// Join handles POST /households/join requests.
func (c *HouseholdController) Join(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.JoinHouseholdRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidInviteCode),
		})
		return
	}

	output, err := c.joinUseCase.Execute(ctx.Request.Context(), household.JoinHouseholdInput{
		UserID:     userID,
		InviteCode: req.InviteCode,
	})
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHouseholdResponse(output.Household))
}

// Leave handles POST /households/leave requests.
func (c *HouseholdController) Leave(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if err := c.leaveUseCase.Execute(ctx.Request.Context(), household.LeaveHouseholdInput{
		UserID: userID,
	}); err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SendInvite handles POST /households/invite requests.
func (c *HouseholdController) SendInvite(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SendInviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.sendInviteUseCase.Execute(ctx.Request.Context(), household.SendInviteInput{
		UserID: userID,
		Email:  req.Email,
	})
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.MessageResponse{Message: output.Message})
}

// handleHouseholdError maps household errors to HTTP responses.
func (c *HouseholdController) handleHouseholdError(ctx *gin.Context, err error) {
	var hhErr *domainerror.HouseholdError
	if errors.As(err, &hhErr) {
		ctx.JSON(c.getStatusCodeForHouseholdError(hhErr.Code), dto.ErrorResponse{
			Error: hhErr.Message,
			Code:  string(hhErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHouseholdError maps household error codes to HTTP status codes.
func (c *HouseholdController) getStatusCodeForHouseholdError(code domainerror.HouseholdErrorCode) int {
	switch code {
	case domainerror.ErrCodeHouseholdNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotHouseholdMember, domainerror.ErrCodeOwnerCannotLeave:
		return http.StatusForbidden
	case domainerror.ErrCodeAlreadyInHousehold:
		return http.StatusConflict
	case domainerror.ErrCodeHouseholdNameRequired, domainerror.ErrCodeInvalidInviteCode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the standard missing-auth response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
