package models

import (
	"sort"

	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/logger"
)

// InitDefaultCategories seeds the global category catalog on first boot.
// Existing rows win; the defaults are only written into an empty table.
func InitDefaultCategories() error {
	var count int64
	DB.Model(&Category{}).Where("seller_id IS NULL").Count(&count)
	if count > 0 {
		return nil
	}

	names := make([]string, 0, len(constants.DefaultCategories))
	for name := range constants.DefaultCategories {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		category := Category{
			Name:          name,
			Subcategories: StringArray(constants.DefaultCategories[name]),
			SortOrder:     i,
		}
		if err := DB.Create(&category).Error; err != nil {
			return err
		}
	}

	logger.Infow("default_categories_created", "count", len(names))
	return nil
}
