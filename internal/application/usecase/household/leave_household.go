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

// LeaveHouseholdInput represents the input for leaving a household.
type LeaveHouseholdInput struct {
	UserID uuid.UUID
}

// LeaveHouseholdUseCase handles leaving a household.
type LeaveHouseholdUseCase struct {
	householdRepo adapter.HouseholdRepository
	userRepo      adapter.UserRepository
}

// NewLeaveHouseholdUseCase creates a new LeaveHouseholdUseCase instance.
func NewLeaveHouseholdUseCase(
	householdRepo adapter.HouseholdRepository,
	userRepo adapter.UserRepository,
) *LeaveHouseholdUseCase {
	return &LeaveHouseholdUseCase{
		householdRepo: householdRepo,
		userRepo:      userRepo,
	}
}

// Execute removes the caller from their household. The owner may only leave
// once every other member has left. Expenses logged by the leaver stay with
// the household.
func (uc *LeaveHouseholdUseCase) Execute(ctx context.Context, input LeaveHouseholdInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !user.HasHousehold() {
		return domainerror.NewHouseholdError(
			domainerror.ErrCodeNotHouseholdMember,
			"user does not belong to a household",
			domainerror.ErrNotHouseholdMember,
		)
	}

	householdID := *user.HouseholdID

	member, err := uc.householdRepo.FindMember(ctx, householdID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if member == nil {
		return domainerror.NewHouseholdError(
			domainerror.ErrCodeNotHouseholdMember,
			"user does not belong to a household",
			domainerror.ErrNotHouseholdMember,
		)
	}

	if member.Role == entity.HouseholdRoleOwner {
		household, err := uc.householdRepo.FindWithMembers(ctx, householdID)
		if err != nil {
			return fmt.Errorf("failed to get household members: %w", err)
		}
		if household != nil && household.MemberCount > 1 {
			return domainerror.NewHouseholdError(
				domainerror.ErrCodeOwnerCannotLeave,
				"owner cannot leave while other members remain",
				domainerror.ErrOwnerCannotLeave,
			)
		}
	}

	if err := uc.householdRepo.RemoveMember(ctx, householdID, input.UserID); err != nil {
		return fmt.Errorf("failed to remove membership: %w", err)
	}

	user.HouseholdID = nil
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to unlink user from household: %w", err)
	}

	return nil
}
