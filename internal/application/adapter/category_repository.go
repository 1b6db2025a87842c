// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByHousehold retrieves all categories visible to a household:
	// the shared defaults plus the household's own categories.
	FindByHousehold(ctx context.Context, householdID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameInHousehold checks whether a category with the given name
	// already exists among the categories visible to a household.
	ExistsByNameInHousehold(ctx context.Context, householdID uuid.UUID, name string) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete soft deletes a category by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
