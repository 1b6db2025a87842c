// Package entity defines the core business entities for the domain layer.
package entity

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// HouseholdRole represents the role of a member in a household.
type HouseholdRole string

const (
	HouseholdRoleOwner  HouseholdRole = "owner"
	HouseholdRoleMember HouseholdRole = "member"
)

// InviteCodeLength is the length of generated household invite codes.
const InviteCodeLength = 8

// inviteCodeAlphabet excludes ambiguous characters (0/o, 1/l).
const inviteCodeAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"

// Household represents the sharing group owning expenses, budgets, and categories.
type Household struct {
	ID         uuid.UUID
	Name       string
	InviteCode string
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewHousehold creates a new Household entity with a fresh invite code.
func NewHousehold(name string, createdBy uuid.UUID) *Household {
	now := time.Now().UTC()

	return &Household{
		ID:         uuid.New(),
		Name:       name,
		InviteCode: GenerateInviteCode(),
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// GenerateInviteCode produces a random lowercase invite code.
func GenerateInviteCode() string {
	code := make([]byte, InviteCodeLength)
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code)
}

// HouseholdMember represents a user's membership in a household.
type HouseholdMember struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	Role        HouseholdRole
	JoinedAt    time.Time
	// User information (populated when needed)
	DisplayName string
	Email       string
}

// NewHouseholdMember creates a new HouseholdMember entity.
func NewHouseholdMember(householdID, userID uuid.UUID, role HouseholdRole) *HouseholdMember {
	return &HouseholdMember{
		ID:          uuid.New(),
		HouseholdID: householdID,
		UserID:      userID,
		Role:        role,
		JoinedAt:    time.Now().UTC(),
	}
}

// HouseholdWithMembers represents a household together with its members.
type HouseholdWithMembers struct {
	Household   *Household
	Members     []*HouseholdMember
	MemberCount int
	UserRole    HouseholdRole
}
