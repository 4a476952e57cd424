// Package categories provides database operations for word categories.
//
// On top of the generic crud operations it adds lookups by category and
// sub-category name. Names are not unique in storage; the lookups return
// the first match.
package categories

import (
	"gorm.io/gorm"

	"github.com/pronunciationapp/backend/internal/database/crud"
	"github.com/pronunciationapp/backend/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	*crud.Repository[entities.Category]
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: crud.NewRepository[entities.Category](db)}
}

// FindByCategoryName returns the first category with the given name.
func (r *Repository) FindByCategoryName(name string) (*entities.Category, error) {
	return r.FindOneBy("category_name", name)
}

// FindBySubCategoryName returns the first category with the given sub-category name.
func (r *Repository) FindBySubCategoryName(name string) (*entities.Category, error) {
	return r.FindOneBy("sub_category_name", name)
}

// FindByNames returns the category matching both names, used by bulk imports
// to reuse existing rows.
func (r *Repository) FindByNames(name, subName string) (*entities.Category, error) {
	var category entities.Category
	err := r.DB().Where("category_name = ? AND sub_category_name = ?", name, subName).First(&category).Error
	if err == gorm.ErrRecordNotFound {
		return nil, crud.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
