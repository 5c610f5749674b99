package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	CustomerName string          `json:"customerName"`
	Status       string          `gorm:"not null;default:pending" json:"status"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Notes        string          `json:"notes"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// nullable: a nil table means a takeaway/counter order
	TableID *uint  `json:"tableId"`
	Table   *Table `json:"-"`

	Items []OrderItem `json:"-"`
}
