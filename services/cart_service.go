package services

import (
	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Catalog  *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, Catalog: cat}
}

// View resolves the user's cart (creating an empty one on first access)
// and returns it with products attached plus the running subtotal.
func (s *CartService) View(userID uint) (*entity.Cart, decimal.Decimal, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.CartRepo.GetOrCreateCart(tx, userID)
		return err
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	cart, err := s.CartRepo.GetCartWithItems(s.DB, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	subtotal := decimal.Zero
	for _, it := range cart.Items {
		subtotal = subtotal.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return cart, subtotal, nil
}

// Add puts one unit of the product into the user's cart. The product must
// exist; its available flag is deliberately not consulted here, matching
// the browsing surface's looser add path.
func (s *CartService) Add(userID, productID uint) error {
	product, err := s.Catalog.FindProductByID(productID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		_, err = s.CartRepo.UpsertItem(tx, cart.ID, product.ID)
		return err
	})
}

// Remove deletes a cart item owned by the user; items in other users'
// carts are indistinguishable from missing ones.
func (s *CartService) Remove(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}
