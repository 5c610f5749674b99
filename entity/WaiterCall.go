package entity

import (
	"gorm.io/gorm"
)

const (
	CallPending   = "pending"
	CallResponded = "responded"
	CallResolved  = "resolved"
)

type WaiterCall struct {
	gorm.Model
	Message string `json:"message"`
	Status  string `gorm:"not null;default:pending" json:"status"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableID *uint  `json:"tableId"`
	Table   *Table `json:"-"`
}
