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

// JoinHouseholdInput represents the input for joining a household by invite code.
type JoinHouseholdInput struct {
	UserID     uuid.UUID
	InviteCode string
}

// JoinHouseholdOutput represents the output of joining a household.
type JoinHouseholdOutput struct {
	Household *entity.Household
}

// JoinHouseholdUseCase handles joining a household via invite code.
type JoinHouseholdUseCase struct {
	householdRepo adapter.HouseholdRepository
	userRepo      adapter.UserRepository
}

// NewJoinHouseholdUseCase creates a new JoinHouseholdUseCase instance.
func NewJoinHouseholdUseCase(
	householdRepo adapter.HouseholdRepository,
	userRepo adapter.UserRepository,
) *JoinHouseholdUseCase {
	return &JoinHouseholdUseCase{
		householdRepo: householdRepo,
		userRepo:      userRepo,
	}
}

// Execute joins the caller to the household matching the invite code.
// Codes are matched case-insensitively.
func (uc *JoinHouseholdUseCase) Execute(
	ctx context.Context,
	input JoinHouseholdInput,
) (*JoinHouseholdOutput, error) {
	code := strings.ToLower(strings.TrimSpace(input.InviteCode))
	if len(code) != entity.InviteCodeLength {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeInvalidInviteCode,
			"invalid invite code",
			domainerror.ErrInvalidInviteCode,
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

	household, err := uc.householdRepo.FindByInviteCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}
	if household == nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeInvalidInviteCode,
			"invalid invite code",
			domainerror.ErrInvalidInviteCode,
		)
	}

	member := entity.NewHouseholdMember(household.ID, input.UserID, entity.HouseholdRoleMember)
	if err := uc.householdRepo.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}

	user.HouseholdID = &household.ID
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to link user to household: %w", err)
	}

	return &JoinHouseholdOutput{Household: household}, nil
}
