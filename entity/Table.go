package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	// server-generated, immutable, globally unique; the only public lookup key
	QRCode string `gorm:"uniqueIndex;not null" json:"qrCode"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Orders      []Order      `json:"-"`
	WaiterCalls []WaiterCall `json:"-"`
}
