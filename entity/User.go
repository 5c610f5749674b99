package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// one restaurant per user, enforced by the unique index on restaurants.user_id
	Restaurant *Restaurant `gorm:"foreignKey:UserID" json:"-"`
}
