package category

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
	deleted    []uuid.UUID
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, category := range categories {
		repo.categories[category.ID] = category
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) FindByHousehold(_ context.Context, householdID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, category := range r.categories {
		if category.IsShared() || *category.HouseholdID == householdID {
			out = append(out, category)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ExistsByNameInHousehold(_ context.Context, householdID uuid.UUID, name string) (bool, error) {
	for _, category := range r.categories {
		if !category.IsShared() && *category.HouseholdID != householdID {
			continue
		}
		if strings.EqualFold(category.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.categories, id)
	return nil
}

func defaultCategory(name string) *entity.Category {
	return &entity.Category{ID: uuid.New(), Name: name, IsDefault: true}
}

func TestCreateCategory(t *testing.T) {
	householdID := uuid.New()
	repo := newFakeCategoryRepo()
	uc := NewCreateCategoryUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateCategoryInput{
		HouseholdID: householdID,
		Name:        "  Pet Care  ",
		Icon:        "🐶",
		Color:       "#22C55E",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Category.Name != "Pet Care" {
		t.Errorf("expected trimmed name, got %q", output.Category.Name)
	}
	if output.Category.HouseholdID == nil || *output.Category.HouseholdID != householdID {
		t.Errorf("expected the category to be owned by the household")
	}
	if output.Category.IsDefault {
		t.Errorf("household categories must not be defaults")
	}
	if len(repo.categories) != 1 {
		t.Errorf("expected the category to be persisted")
	}
}

func TestCreateCategoryDefaultsIconAndColor(t *testing.T) {
	uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

	output, err := uc.Execute(context.Background(), CreateCategoryInput{
		HouseholdID: uuid.New(),
		Name:        "Misc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Category.Color != entity.DefaultCategoryColor {
		t.Errorf("expected default color, got %q", output.Category.Color)
	}
	if output.Category.Icon != entity.DefaultCategoryIcon {
		t.Errorf("expected default icon, got %q", output.Category.Icon)
	}
}

func TestCreateCategoryValidation(t *testing.T) {
	householdID := uuid.New()
	existing := entity.NewCategory("Hobbies", "", "#FF0000", householdID)

	tests := []struct {
		name     string
		input    CreateCategoryInput
		wantCode domainerror.CategoryErrorCode
	}{
		{
			name:     "missing name",
			input:    CreateCategoryInput{HouseholdID: householdID, Name: "   "},
			wantCode: domainerror.ErrCodeMissingCategoryFields,
		},
		{
			name: "name too long",
			input: CreateCategoryInput{
				HouseholdID: householdID,
				Name:        strings.Repeat("x", MaxCategoryNameLength+1),
			},
			wantCode: domainerror.ErrCodeCategoryNameTooLong,
		},
		{
			name:     "bad color",
			input:    CreateCategoryInput{HouseholdID: householdID, Name: "Misc", Color: "red"},
			wantCode: domainerror.ErrCodeInvalidColorFormat,
		},
		{
			name:     "short hex color",
			input:    CreateCategoryInput{HouseholdID: householdID, Name: "Misc", Color: "#FFF"},
			wantCode: domainerror.ErrCodeInvalidColorFormat,
		},
		{
			name:     "duplicate name",
			input:    CreateCategoryInput{HouseholdID: householdID, Name: "hobbies"},
			wantCode: domainerror.ErrCodeCategoryNameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateCategoryUseCase(newFakeCategoryRepo(existing))

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			catErr, ok := err.(*domainerror.CategoryError)
			if !ok {
				t.Fatalf("expected CategoryError, got %T", err)
			}
			if catErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, catErr.Code)
			}
		})
	}
}

func TestUpdateCategory(t *testing.T) {
	householdID := uuid.New()
	category := entity.NewCategory("Hobbies", "🎨", "#FF0000", householdID)
	repo := newFakeCategoryRepo(category)
	uc := NewUpdateCategoryUseCase(repo)

	name := "Crafts"
	color := "#00FF00"
	output, err := uc.Execute(context.Background(), UpdateCategoryInput{
		ID:          category.ID,
		HouseholdID: householdID,
		Name:        &name,
		Color:       &color,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Category.Name != "Crafts" || output.Category.Color != "#00FF00" {
		t.Errorf("expected updated fields, got %q %q", output.Category.Name, output.Category.Color)
	}
	if output.Category.Icon != "🎨" {
		t.Errorf("nil fields must be left unchanged, got icon %q", output.Category.Icon)
	}
}

func TestUpdateCategoryGuards(t *testing.T) {
	householdID := uuid.New()
	owned := entity.NewCategory("Hobbies", "", "#FF0000", householdID)
	foreign := entity.NewCategory("Theirs", "", "#FF0000", uuid.New())
	shared := defaultCategory("Groceries")

	name := "Renamed"
	tests := []struct {
		name     string
		id       uuid.UUID
		wantCode domainerror.CategoryErrorCode
	}{
		{"unknown category", uuid.New(), domainerror.ErrCodeCategoryNotFound},
		{"shared default", shared.ID, domainerror.ErrCodeDefaultCategoryImmutable},
		{"another household's category", foreign.ID, domainerror.ErrCodeCategoryNotOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUpdateCategoryUseCase(newFakeCategoryRepo(owned, foreign, shared))

			_, err := uc.Execute(context.Background(), UpdateCategoryInput{
				ID:          tt.id,
				HouseholdID: householdID,
				Name:        &name,
			})
			if err == nil {
				t.Fatal("expected an error")
			}
			catErr, ok := err.(*domainerror.CategoryError)
			if !ok {
				t.Fatalf("expected CategoryError, got %T", err)
			}
			if catErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, catErr.Code)
			}
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	householdID := uuid.New()
	owned := entity.NewCategory("Hobbies", "", "#FF0000", householdID)
	shared := defaultCategory("Groceries")
	repo := newFakeCategoryRepo(owned, shared)

	uc := NewDeleteCategoryUseCase(repo)

	if err := uc.Execute(context.Background(), DeleteCategoryInput{ID: owned.ID, HouseholdID: householdID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != owned.ID {
		t.Errorf("expected the owned category to be deleted")
	}

	err := uc.Execute(context.Background(), DeleteCategoryInput{ID: shared.ID, HouseholdID: householdID})
	catErr, ok := err.(*domainerror.CategoryError)
	if !ok || catErr.Code != domainerror.ErrCodeDefaultCategoryImmutable {
		t.Errorf("expected ErrCodeDefaultCategoryImmutable, got %v", err)
	}
}
