// Package household contains household management use cases.
package household

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// SendInviteInput represents the input for emailing a household invitation.
type SendInviteInput struct {
	UserID uuid.UUID
	Email  string
}

// SendInviteOutput represents the output of sending a household invitation.
type SendInviteOutput struct {
	Message string
}

// SendInviteUseCase handles emailing household invitations.
type SendInviteUseCase struct {
	householdRepo adapter.HouseholdRepository
	userRepo      adapter.UserRepository
	emailSender   adapter.EmailSender
	logger        *slog.Logger
}

// NewSendInviteUseCase creates a new SendInviteUseCase instance.
func NewSendInviteUseCase(
	householdRepo adapter.HouseholdRepository,
	userRepo adapter.UserRepository,
	emailSender adapter.EmailSender,
	logger *slog.Logger,
) *SendInviteUseCase {
	return &SendInviteUseCase{
		householdRepo: householdRepo,
		userRepo:      userRepo,
		emailSender:   emailSender,
		logger:        logger,
	}
}

// Execute emails a household invitation with the invite code. Delivery is
// fire-and-forget: provider trouble is logged, never surfaced to the caller.
func (uc *SendInviteUseCase) Execute(ctx context.Context, input SendInviteInput) (*SendInviteOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.HasHousehold() {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeNotHouseholdMember,
			"user does not belong to a household",
			domainerror.ErrNotHouseholdMember,
		)
	}

	household, err := uc.householdRepo.FindByID(ctx, *user.HouseholdID)
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

	invite := adapter.InviteEmail{
		To:            strings.TrimSpace(input.Email),
		InviterName:   user.DisplayName,
		HouseholdName: household.Name,
		InviteCode:    household.InviteCode,
	}

	if err := uc.emailSender.SendInvite(ctx, invite); err != nil {
		uc.logger.Error("failed to send invite email",
			"household_id", household.ID,
			"error", err,
		)
	}

	return &SendInviteOutput{
		Message: "Invitation sent",
	}, nil
}
