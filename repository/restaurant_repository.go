// repository/restaurant_repository.go
package repository

import (
	"time"

	"qrmenu/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindByUserID resolves the caller's tenant; a user owns at most one restaurant.
func (r *RestaurantRepository) FindByUserID(userID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("user_id = ?", userID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) IsOwnedBy(restaurantID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restaurantID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteCascade tears the tenant down all-or-nothing inside tx.
func (r *RestaurantRepository) DeleteCascade(tx *gorm.DB, restaurantID uint) error {
	if err := tx.Unscoped().Where("order_id IN (?)",
		tx.Model(&entity.Order{}).Select("id").Where("restaurant_id = ?", restaurantID),
	).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	for _, m := range []any{
		&entity.Order{}, &entity.WaiterCall{}, &entity.Table{},
		&entity.Product{}, &entity.Category{},
	} {
		if err := tx.Unscoped().Where("restaurant_id = ?", restaurantID).Delete(m).Error; err != nil {
			return err
		}
	}
	return tx.Unscoped().Delete(&entity.Restaurant{}, restaurantID).Error
}

type DashboardStats struct {
	TotalProducts      int64 `json:"totalProducts"`
	ActiveTables       int64 `json:"activeTables"`
	TodayOrders        int64 `json:"todayOrders"`
	PendingWaiterCalls int64 `json:"pendingWaiterCalls"`
}

func (r *RestaurantRepository) Stats(restaurantID uint) (*DashboardStats, error) {
	var s DashboardStats

	if err := r.DB.Model(&entity.Product{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&s.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Table{}).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Count(&s.ActiveTables).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND created_at >= ?", restaurantID, midnight).
		Count(&s.TodayOrders).Error; err != nil {
		return nil, err
	}

	if err := r.DB.Model(&entity.WaiterCall{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, entity.CallPending).
		Count(&s.PendingWaiterCalls).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
