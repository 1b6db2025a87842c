// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// CreateHouseholdRequest represents the request body for household creation.
type CreateHouseholdRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// JoinHouseholdRequest represents the request body for joining by invite code.
type JoinHouseholdRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// SendInviteRequest represents the request body for emailing an invitation.
type SendInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HouseholdMemberResponse represents one member in API responses.
type HouseholdMemberResponse struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

// HouseholdResponse represents a household in API responses.
type HouseholdResponse struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"name"`
	InviteCode string                    `json:"invite_code"`
	Role       string                    `json:"role,omitempty"`
	Members    []HouseholdMemberResponse `json:"members,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// ToHouseholdResponse converts a domain Household entity to a HouseholdResponse DTO.
func ToHouseholdResponse(household *entity.Household) HouseholdResponse {
	return HouseholdResponse{
		ID:         household.ID.String(),
		Name:       household.Name,
		InviteCode: household.InviteCode,
		CreatedAt:  household.CreatedAt,
	}
}

// ToHouseholdWithMembersResponse converts a HouseholdWithMembers to a HouseholdResponse DTO.
func ToHouseholdWithMembersResponse(household *entity.HouseholdWithMembers) HouseholdResponse {
	response := ToHouseholdResponse(household.Household)
	response.Role = string(household.UserRole)

	response.Members = make([]HouseholdMemberResponse, len(household.Members))
	for i, member := range household.Members {
		response.Members[i] = HouseholdMemberResponse{
			UserID:      member.UserID.String(),
			DisplayName: member.DisplayName,
			Email:       member.Email,
			Role:        string(member.Role),
			JoinedAt:    member.JoinedAt,
		}
	}

	return response
}
