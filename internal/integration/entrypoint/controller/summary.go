// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/household-tracker/backend/internal/application/usecase/summary"
	"github.com/household-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/household-tracker/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles spending summary and insight endpoints.
type SummaryController struct {
	summaryUseCase  *summary.GetSpendingSummaryUseCase
	insightsUseCase *summary.GetInsightsUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	summaryUseCase *summary.GetSpendingSummaryUseCase,
	insightsUseCase *summary.GetInsightsUseCase,
) *SummaryController {
	return &SummaryController{
		summaryUseCase:  summaryUseCase,
		insightsUseCase: insightsUseCase,
	}
}

// GetSummary handles GET /summary requests. Defaults to the current month
// when no month query parameter is given.
func (c *SummaryController) GetSummary(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, ok := c.resolveMonth(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), summary.GetSpendingSummaryInput{
		HouseholdID: householdID,
		Month:       month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute spending summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetInsights handles GET /insights requests.
func (c *SummaryController) GetInsights(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, ok := c.resolveMonth(ctx)
	if !ok {
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), summary.GetInsightsInput{
		HouseholdID: householdID,
		Month:       month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute insights",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Month.Format(monthLayout), output.Insights))
}

// resolveMonth parses the optional month query parameter, writing a 400
// response and returning false when it is malformed.
func (c *SummaryController) resolveMonth(ctx *gin.Context) (time.Time, bool) {
	raw := ctx.Query("month")
	if raw == "" {
		return time.Now().UTC(), true
	}

	month, err := time.Parse(monthLayout, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format, expected YYYY-MM",
		})
		return time.Time{}, false
	}
	return month, true
}
