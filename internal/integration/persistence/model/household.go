// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// HouseholdModel represents the households table in the database.
type HouseholdModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name       string         `gorm:"type:varchar(100);not null"`
	InviteCode string         `gorm:"type:varchar(16);uniqueIndex;not null"`
	CreatedBy  uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Members []HouseholdMemberModel `gorm:"foreignKey:HouseholdID;references:ID"`
}

// TableName returns the table name for the HouseholdModel.
func (HouseholdModel) TableName() string {
	return "households"
}

// ToEntity converts a HouseholdModel to a domain Household entity.
func (m *HouseholdModel) ToEntity() *entity.Household {
	return &entity.Household{
		ID:         m.ID,
		Name:       m.Name,
		InviteCode: m.InviteCode,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// HouseholdFromEntity creates a HouseholdModel from a domain Household entity.
func HouseholdFromEntity(household *entity.Household) *HouseholdModel {
	return &HouseholdModel{
		ID:         household.ID,
		Name:       household.Name,
		InviteCode: household.InviteCode,
		CreatedBy:  household.CreatedBy,
		CreatedAt:  household.CreatedAt,
		UpdatedAt:  household.UpdatedAt,
	}
}

// HouseholdMemberModel represents the household_members table in the database.
type HouseholdMemberModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index:idx_household_user,unique"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_household_user,unique"`
	Role        string    `gorm:"type:varchar(10);not null"`
	JoinedAt    time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the HouseholdMemberModel.
func (HouseholdMemberModel) TableName() string {
	return "household_members"
}

// ToEntity converts a HouseholdMemberModel to a domain HouseholdMember entity.
func (m *HouseholdMemberModel) ToEntity() *entity.HouseholdMember {
	member := &entity.HouseholdMember{
		ID:          m.ID,
		HouseholdID: m.HouseholdID,
		UserID:      m.UserID,
		Role:        entity.HouseholdRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}

	if m.User != nil {
		member.DisplayName = m.User.DisplayName
		member.Email = m.User.Email
	}

	return member
}

// HouseholdMemberFromEntity creates a HouseholdMemberModel from a domain HouseholdMember entity.
func HouseholdMemberFromEntity(member *entity.HouseholdMember) *HouseholdMemberModel {
	return &HouseholdMemberModel{
		ID:          member.ID,
		HouseholdID: member.HouseholdID,
		UserID:      member.UserID,
		Role:        string(member.Role),
		JoinedAt:    member.JoinedAt,
	}
}
