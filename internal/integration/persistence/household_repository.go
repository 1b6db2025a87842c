// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	"github.com/household-tracker/backend/internal/integration/persistence/model"
)

// householdRepository implements the adapter.HouseholdRepository interface.
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository creates a new household repository instance.
func NewHouseholdRepository(db *gorm.DB) adapter.HouseholdRepository {
	return &householdRepository{
		db: db,
	}
}

// Create creates a new household in the database.
func (r *householdRepository) Create(ctx context.Context, household *entity.Household) error {
	householdModel := model.HouseholdFromEntity(household)
	result := r.db.WithContext(ctx).Create(householdModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a household by its ID.
// Returns (nil, nil) when no household matches.
func (r *householdRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	var householdModel model.HouseholdModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&householdModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return householdModel.ToEntity(), nil
}

// FindByInviteCode retrieves a household by its invite code, case-insensitively.
// Returns (nil, nil) when no household matches.
func (r *householdRepository) FindByInviteCode(ctx context.Context, code string) (*entity.Household, error) {
	var householdModel model.HouseholdModel
	result := r.db.WithContext(ctx).
		Where("LOWER(invite_code) = LOWER(?)", code).
		First(&householdModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return householdModel.ToEntity(), nil
}

// FindWithMembers retrieves a household together with its member list.
// Returns (nil, nil) when no household matches.
func (r *householdRepository) FindWithMembers(ctx context.Context, id uuid.UUID) (*entity.HouseholdWithMembers, error) {
	var householdModel model.HouseholdModel
	result := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Members.User").
		Where("id = ?", id).
		First(&householdModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	members := make([]*entity.HouseholdMember, len(householdModel.Members))
	for i, mm := range householdModel.Members {
		members[i] = mm.ToEntity()
	}

	return &entity.HouseholdWithMembers{
		Household:   householdModel.ToEntity(),
		Members:     members,
		MemberCount: len(members),
	}, nil
}

// Update updates an existing household in the database.
func (r *householdRepository) Update(ctx context.Context, household *entity.Household) error {
	householdModel := model.HouseholdFromEntity(household)
	result := r.db.WithContext(ctx).
		Model(&model.HouseholdModel{}).
		Where("id = ?", household.ID).
		Select("name", "invite_code", "updated_at").
		Updates(householdModel)
	return result.Error
}

// AddMember registers a user as a member of a household.
func (r *householdRepository) AddMember(ctx context.Context, member *entity.HouseholdMember) error {
	memberModel := model.HouseholdMemberFromEntity(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// RemoveMember removes a user from a household.
func (r *householdRepository) RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("household_id = ? AND user_id = ?", householdID, userID).
		Delete(&model.HouseholdMemberModel{})
	return result.Error
}

// FindMember retrieves a membership record for a user in a household.
// Returns (nil, nil) when no membership matches.
func (r *householdRepository) FindMember(ctx context.Context, householdID, userID uuid.UUID) (*entity.HouseholdMember, error) {
	var memberModel model.HouseholdMemberModel
	result := r.db.WithContext(ctx).
		Where("household_id = ? AND user_id = ?", householdID, userID).
		First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}
