package services

import (
	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CheckoutService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	CartRepo  *repository.CartRepository
}

func NewCheckoutService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository) *CheckoutService {
	return &CheckoutService{DB: db, OrderRepo: or, CartRepo: cr}
}

// CartTotal sums price × quantity over the items using each product's
// current price. No rounding beyond what decimal carries.
func CartTotal(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Checkout turns the user's cart into an order and deletes the cart.
// The cart must already exist (no lazy creation on this path); an empty
// cart still produces a zero-total order.
func (s *CheckoutService) Checkout(userID uint) (*entity.Order, error) {
	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartWithItems(tx, userID)
		if err != nil {
			return err
		}

		order = entity.Order{
			Reference:  uuid.NewString(),
			TotalPrice: CartTotal(cart.Items),
			UserID:     userID,
		}
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		return s.CartRepo.DeleteCart(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *CheckoutService) ListOrders(userID uint) ([]entity.Order, error) {
	return s.OrderRepo.ListForUser(userID)
}
