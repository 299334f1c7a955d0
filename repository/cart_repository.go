package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreateCart returns the user's cart, creating an empty one on first
// access. Run inside a transaction; the unique index on user_id stops
// duplicate carts when two requests race here.
func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// GetCartWithItems loads the cart with items and their products in one
// round trip, so rendering never does a per-item product lookup.
// Returns gorm.ErrRecordNotFound when the user has no cart.
func (r *CartRepository) GetCartWithItems(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertItem merges on (cart, product): an existing row gains +1 quantity,
// otherwise a new row starts at 1.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, productID uint) (*entity.CartItem, error) {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&exist).Error
	if err == nil {
		exist.Quantity++
		return &exist, tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := entity.CartItem{CartID: cartID, ProductID: productID, Quantity: 1}
	if err := tx.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// RemoveItem deletes an item only if it sits in the given user's cart.
// Hard delete: a soft-deleted row would still occupy the (cart, product)
// unique index and block re-adding the product.
func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	res := tx.Unscoped().
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCart removes the cart and all its items. Hard delete, so the
// unique index on user_id is free for the user's next cart.
func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Cart{}, cartID).Error
}
