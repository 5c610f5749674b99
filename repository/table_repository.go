// repository/table_repository.go
package repository

import (
	"qrmenu/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) ListActive(restaurantID uint) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("name asc").
		Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindActiveByQRCode is the single unauthenticated lookup path; the token is
// the whole credential.
func (r *TableRepository) FindActiveByQRCode(qrCode string) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.
		Where("qr_code = ? AND is_active = ?", qrCode, true).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) QRCodeTaken(qrCode string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).Where("qr_code = ?", qrCode).Count(&count).Error
	return count > 0, err
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Updates(fields).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Table{}, id).Error
}
