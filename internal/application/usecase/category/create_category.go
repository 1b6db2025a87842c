// Package category contains category management use cases.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum length of a category name.
const MaxCategoryNameLength = 50

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateCategoryInput represents the input for creating a category.
type CreateCategoryInput struct {
	HouseholdID uuid.UUID
	Name        string
	Icon        string
	Color       string
}

// CreateCategoryOutput represents the output of creating a category.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles creating household categories.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute creates a new category owned by the household.
func (uc *CreateCategoryUseCase) Execute(
	ctx context.Context,
	input CreateCategoryInput,
) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = entity.DefaultCategoryColor
	} else if !hexColorRegex.MatchString(color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a #RRGGBB hex value",
			domainerror.ErrInvalidColorFormat,
		)
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

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

	category := entity.NewCategory(name, icon, color, input.HouseholdID)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

func validateName(name string) error {
	if name == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			domainerror.ErrMissingCategoryFields,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must be at most %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return nil
}
