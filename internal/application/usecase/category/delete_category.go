// Package category contains category management use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
)

// DeleteCategoryInput represents the input for deleting a category.
type DeleteCategoryInput struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
}

// DeleteCategoryUseCase handles deleting household categories.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute soft deletes a household-owned category. Existing expenses keep
// their category reference; shared defaults cannot be deleted.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if _, err := findOwnedCategory(ctx, uc.categoryRepo, input.ID, input.HouseholdID); err != nil {
		return err
	}

	if err := uc.categoryRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
