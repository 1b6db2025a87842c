// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// HouseholdRepository defines the interface for household persistence operations.
type HouseholdRepository interface {
	// Create creates a new household in the database.
	Create(ctx context.Context, household *entity.Household) error

	// FindByID retrieves a household by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error)

	// FindByInviteCode retrieves a household by its invite code.
	// The lookup is case-insensitive.
	FindByInviteCode(ctx context.Context, code string) (*entity.Household, error)

	// FindWithMembers retrieves a household together with its member list.
	FindWithMembers(ctx context.Context, id uuid.UUID) (*entity.HouseholdWithMembers, error)

	// Update updates an existing household in the database.
	Update(ctx context.Context, household *entity.Household) error

	// AddMember registers a user as a member of a household.
	AddMember(ctx context.Context, member *entity.HouseholdMember) error

	// RemoveMember removes a user from a household.
	RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error

	// FindMember retrieves a membership record for a user in a household.
	FindMember(ctx context.Context, householdID, userID uuid.UUID) (*entity.HouseholdMember, error)
}
