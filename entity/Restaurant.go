package entity

import (
	"gorm.io/gorm"
)

const (
	PlanFree  = "free"
	PlanElite = "elite"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`

	PrimaryColor   string `gorm:"default:#2563EB" json:"primaryColor"`
	SecondaryColor string `gorm:"default:#F59E0B" json:"secondaryColor"`

	Plan        string `gorm:"not null;default:free" json:"plan"`
	MaxProducts int    `gorm:"not null;default:10" json:"maxProducts"` // only meaningful on the free plan

	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Categories  []Category   `json:"-"`
	Products    []Product    `json:"-"`
	Tables      []Table      `json:"-"`
	Orders      []Order      `json:"-"`
	WaiterCalls []WaiterCall `json:"-"`
}
