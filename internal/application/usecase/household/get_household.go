// Package household contains household management use cases.
package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// GetHouseholdInput represents the input for getting the caller's household.
type GetHouseholdInput struct {
	UserID uuid.UUID
}

// GetHouseholdOutput represents the output of getting a household.
type GetHouseholdOutput struct {
	Household *entity.HouseholdWithMembers
}

// GetHouseholdUseCase handles retrieving the caller's household with members.
type GetHouseholdUseCase struct {
	householdRepo adapter.HouseholdRepository
	userRepo      adapter.UserRepository
}

// NewGetHouseholdUseCase creates a new GetHouseholdUseCase instance.
func NewGetHouseholdUseCase(
	householdRepo adapter.HouseholdRepository,
	userRepo adapter.UserRepository,
) *GetHouseholdUseCase {
	return &GetHouseholdUseCase{
		householdRepo: householdRepo,
		userRepo:      userRepo,
	}
}

// Execute retrieves the caller's household together with its members.
func (uc *GetHouseholdUseCase) Execute(
	ctx context.Context,
	input GetHouseholdInput,
) (*GetHouseholdOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.HasHousehold() {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeHouseholdNotFound,
			"user does not belong to a household",
			domainerror.ErrHouseholdNotFound,
		)
	}

	household, err := uc.householdRepo.FindWithMembers(ctx, *user.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}
	if household == nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeHouseholdNotFound,
			"household not found",
			domainerror.ErrHouseholdNotFound,
		)
	}

	for _, member := range household.Members {
		if member.UserID == input.UserID {
			household.UserRole = member.Role
			break
		}
	}

	return &GetHouseholdOutput{Household: household}, nil
}
