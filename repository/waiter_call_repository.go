// repository/waiter_call_repository.go
package repository

import (
	"qrmenu/entity"

	"gorm.io/gorm"
)

type WaiterCallRepository struct {
	DB *gorm.DB
}

func NewWaiterCallRepository(db *gorm.DB) *WaiterCallRepository {
	return &WaiterCallRepository{DB: db}
}

func (r *WaiterCallRepository) List(restaurantID uint, status string) ([]entity.WaiterCall, error) {
	q := r.DB.Where("restaurant_id = ?", restaurantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var calls []entity.WaiterCall
	err := q.Order("created_at desc").Find(&calls).Error
	return calls, err
}

func (r *WaiterCallRepository) FindByID(id uint) (*entity.WaiterCall, error) {
	var call entity.WaiterCall
	if err := r.DB.First(&call, id).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

func (r *WaiterCallRepository) Create(call *entity.WaiterCall) error {
	return r.DB.Create(call).Error
}

func (r *WaiterCallRepository) UpdateStatusGuard(tx *gorm.DB, callID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.WaiterCall{}).
		Where("id = ? AND status = ?", callID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
