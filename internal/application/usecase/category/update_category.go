// Package category contains category management use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for updating a category.
// Nil pointer fields are left unchanged.
type UpdateCategoryInput struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Name        *string
	Icon        *string
	Color       *string
}

// UpdateCategoryOutput represents the output of updating a category.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles updating household categories.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute updates a household-owned category. Shared default categories are immutable.
func (uc *UpdateCategoryUseCase) Execute(
	ctx context.Context,
	input UpdateCategoryInput,
) (*UpdateCategoryOutput, error) {
	category, err := findOwnedCategory(ctx, uc.categoryRepo, input.ID, input.HouseholdID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		if !strings.EqualFold(name, category.Name) {
			exists, err := uc.categoryRepo.ExistsByNameInHousehold(ctx, input.HouseholdID, name)
			if err != nil {
				return nil, fmt.Errorf("failed to check category name: %w", err)
			}
			if exists {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryNameExists,
					"a category with this name already exists",
					domainerror.ErrCategoryNameExists,
				)
			}
		}
		category.Name = name
	}

	if input.Icon != nil {
		category.Icon = strings.TrimSpace(*input.Icon)
	}

	if input.Color != nil {
		color := strings.TrimSpace(*input.Color)
		if !hexColorRegex.MatchString(color) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidColorFormat,
				"color must be a #RRGGBB hex value",
				domainerror.ErrInvalidColorFormat,
			)
		}
		category.Color = color
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}

// findOwnedCategory loads a category and checks it is owned by the household
// and not a shared default.
func findOwnedCategory(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	id uuid.UUID,
	householdID uuid.UUID,
) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if category.IsDefault || category.IsShared() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeDefaultCategoryImmutable,
			"default categories cannot be modified",
			domainerror.ErrDefaultCategoryImmutable,
		)
	}

	if *category.HouseholdID != householdID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotOwned,
			"category does not belong to household",
			domainerror.ErrCategoryNotOwned,
		)
	}

	return category, nil
}
