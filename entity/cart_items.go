package entity

import (
	"gorm.io/gorm"
)

// At most one row per (cart, product); repeated adds bump Quantity.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId" gorm:"uniqueIndex:idx_cart_product"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId" gorm:"uniqueIndex:idx_cart_product"`
	Product   Product `json:"product"`

	Quantity int `json:"quantity" gorm:"not null;default:1"`
}
