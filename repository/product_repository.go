// repository/product_repository.go
package repository

import (
	"qrmenu/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// List returns every product of the restaurant, available or not, in display
// order. Availability is a display flag, not a filter. categoryID narrows the
// list when non-nil.
func (r *ProductRepository) List(restaurantID uint, categoryID *uint) ([]entity.Product, error) {
	q := r.DB.Where("restaurant_id = ?", restaurantID)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}

	var products []entity.Product
	err := q.Order("sort_order asc, name asc").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(tx *gorm.DB, p *entity.Product) error {
	return tx.Create(p).Error
}

func (r *ProductRepository) CountByRestaurant(tx *gorm.DB, restaurantID uint) (int64, error) {
	var count int64
	err := tx.Model(&entity.Product{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	return count, err
}

func (r *ProductRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Product{}, id).Error
}

// AllBelongToRestaurant checks that every referenced product id lives in the
// target restaurant. Guards the public order endpoint against ids from other
// tenants.
func (r *ProductRepository) AllBelongToRestaurant(ids []uint, restaurantID uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	err := r.DB.Model(&entity.Product{}).
		Where("id IN ? AND restaurant_id = ?", ids, restaurantID).
		Count(&count).Error
	return count == int64(len(uniqueIDs(ids))), err
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
