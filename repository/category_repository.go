// repository/category_repository.go
package repository

import (
	"qrmenu/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// ListActive returns the display order: sortOrder, ties broken by name.
func (r *CategoryRepository) ListActive(restaurantID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("sort_order asc, name asc").
		Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteDetaching hard-deletes the category after clearing product references,
// so products survive their category.
func (r *CategoryRepository) DeleteDetaching(tx *gorm.DB, id uint) error {
	if err := tx.Model(&entity.Product{}).
		Where("category_id = ?", id).
		Update("category_id", nil).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Category{}, id).Error
}
