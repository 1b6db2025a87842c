package db

import (
	"gorm.io/gorm"

	"github.com/household-tracker/backend/internal/domain/entity"
	"github.com/household-tracker/backend/internal/integration/persistence/model"
)

// defaultCategories are the shared categories every household sees.
var defaultCategories = []struct {
	name  string
	icon  string
	color string
}{
	{"Groceries", "🛒", "#22C55E"},
	{"Dining Out", "🍽️", "#F97316"},
	{"Transport", "🚗", "#3B82F6"},
	{"Utilities", "💡", "#EAB308"},
	{"Housing", "🏠", "#8B5CF6"},
	{"Health", "💊", "#EF4444"},
	{"Entertainment", "🎬", "#EC4899"},
	{"Other", entity.DefaultCategoryIcon, entity.DefaultCategoryColor},
}

// SeedDefaultCategories inserts the shared default categories that are
// missing. Safe to run on every startup.
func SeedDefaultCategories(db *gorm.DB) error {
	for _, dc := range defaultCategories {
		var count int64
		err := db.Model(&model.CategoryModel{}).
			Where("name = ? AND household_id IS NULL AND is_default = ?", dc.name, true).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		category := entity.NewDefaultCategory(dc.name, dc.icon, dc.color)
		if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
			return err
		}
	}
	return nil
}
