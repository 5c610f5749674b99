// repository/order_repository.go
package repository

import (
	"qrmenu/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) List(restaurantID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var orders []entity.Order
	err := r.DB.
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) Items(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// UpdateStatusGuard flips status only when the row is still in `from`; zero
// rows affected means the transition lost a race or was never legal for the
// row's current state.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateNotes(id uint, notes string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("notes", notes).Error
}
