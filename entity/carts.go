package entity

import (
	"gorm.io/gorm"
)

// One cart per user; the unique index backs the find-or-insert under
// concurrent requests.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
