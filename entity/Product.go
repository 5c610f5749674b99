package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `json:"imageUrl"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`
	SortOrder   int             `gorm:"default:0" json:"sortOrder"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// nullable: deleting a category clears this, never the product
	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
