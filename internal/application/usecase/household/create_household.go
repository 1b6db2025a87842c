// Package household contains household management use cases.
package household

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// CreateHouseholdInput represents the input for creating a household.
type CreateHouseholdInput struct {
	UserID uuid.UUID
	Name   string
}

// CreateHouseholdOutput represents the output of creating a household.
type CreateHouseholdOutput struct {
	Household *entity.Household
}

// CreateHouseholdUseCase handles household creation.
type CreateHouseholdUseCase struct {
	householdRepo adapter.HouseholdRepository
	userRepo      adapter.UserRepository
}

// NewCreateHouseholdUseCase creates a new CreateHouseholdUseCase instance.
func NewCreateHouseholdUseCase(
	householdRepo adapter.HouseholdRepository,
	userRepo adapter.UserRepository,
) *CreateHouseholdUseCase {
	return &CreateHouseholdUseCase{
		householdRepo: householdRepo,
		userRepo:      userRepo,
	}
}

// Execute creates a new household with the caller as owner.
func (uc *CreateHouseholdUseCase) Execute(
	ctx context.Context,
	input CreateHouseholdInput,
) (*CreateHouseholdOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeHouseholdNameRequired,
			"household name is required",
			domainerror.ErrHouseholdNameRequired,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.HasHousehold() {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeAlreadyInHousehold,
			"user already belongs to a household",
			domainerror.ErrAlreadyInHousehold,
		)
	}

	household := entity.NewHousehold(name, input.UserID)

	if err := uc.householdRepo.Create(ctx, household); err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}

	member := entity.NewHouseholdMember(household.ID, input.UserID, entity.HouseholdRoleOwner)
	if err := uc.householdRepo.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add owner membership: %w", err)
	}

	user.HouseholdID = &household.ID
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to link user to household: %w", err)
	}

	return &CreateHouseholdOutput{Household: household}, nil
}
