// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-tracker/backend/internal/application/adapter"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
	"github.com/household-tracker/backend/internal/integration/entrypoint/dto"
)

// HouseholdMiddleware resolves the authenticated user's household and rejects
// requests from users who have not created or joined one yet.
type HouseholdMiddleware struct {
	userRepo adapter.UserRepository
}

// NewHouseholdMiddleware creates a new household middleware instance.
func NewHouseholdMiddleware(userRepo adapter.UserRepository) *HouseholdMiddleware {
	return &HouseholdMiddleware{
		userRepo: userRepo,
	}
}

// RequireHousehold returns a Gin middleware handler that stores the user's
// household ID in the context. Must run after Authenticate.
func (m *HouseholdMiddleware) RequireHousehold() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not authenticated",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		if !user.HasHousehold() {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Create or join a household first",
				Code:  string(domainerror.ErrCodeNotHouseholdMember),
			})
			c.Abort()
			return
		}

		c.Set(string(HouseholdIDKey), *user.HouseholdID)

		c.Next()
	}
}
