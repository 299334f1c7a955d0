package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TotalPrice is fixed at checkout time and never recomputed.
type Order struct {
	gorm.Model
	Reference  string          `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
