package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name  string          `gorm:"size:200;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	// No default tag: gorm would drop a false value from the insert and
	// the column default would flip it back to true.
	Available bool `gorm:"not null" json:"available"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	CartItems []CartItem `json:"-"`
}
