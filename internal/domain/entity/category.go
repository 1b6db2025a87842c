// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon glyph for categories.
const DefaultCategoryIcon = "🏷️"

// Category represents an expense category. A nil HouseholdID marks a shared
// default category visible to every household.
type Category struct {
	ID          uuid.UUID
	Name        string
	Icon        string
	Color       string
	HouseholdID *uuid.UUID
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new household-owned Category entity.
// Defaulting logic for color and icon is applied in the application layer
// before calling this constructor.
func NewCategory(name, icon, color string, householdID uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Icon:        icon,
		Color:       color,
		HouseholdID: &householdID,
		IsDefault:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewDefaultCategory creates a shared default Category entity visible to
// every household.
func NewDefaultCategory(name, icon, color string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsShared reports whether the category is a shared default category.
func (c *Category) IsShared() bool {
	return c.HouseholdID == nil
}
