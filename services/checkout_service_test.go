package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
}

func TestCartTotal(t *testing.T) {
	items := []entity.CartItem{
		{Quantity: 2, Product: entity.Product{Price: decimal.NewFromInt(10)}},
		{Quantity: 1, Product: entity.Product{Price: decimal.NewFromInt(5)}},
	}
	assert.True(t, CartTotal(items).Equal(decimal.NewFromInt(25)))
	assert.True(t, CartTotal(nil).IsZero())
}

func TestCheckout_CreatesOrderAndDeletesCart(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)
	user := mustUser(t, db, "alice")
	cat := mustCategory(t, db, "misc", "Misc")
	p1 := mustProduct(t, db, "Tee", "10.00", true, cat.ID)
	p2 := mustProduct(t, db, "Novel", "5.00", true, cat.ID)

	require.NoError(t, cartSvc.Add(user.ID, p1.ID))
	require.NoError(t, cartSvc.Add(user.ID, p1.ID))
	require.NoError(t, cartSvc.Add(user.ID, p2.ID))

	order, err := svc.Checkout(user.ID)
	require.NoError(t, err)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(25)), "got %s", order.TotalPrice)
	assert.NotEmpty(t, order.Reference)
	assert.Equal(t, user.ID, order.UserID)

	// Cart and items are gone.
	var carts, items int64
	db.Model(&entity.Cart{}).Where("user_id = ?", user.ID).Count(&carts)
	db.Model(&entity.CartItem{}).Count(&items)
	assert.EqualValues(t, 0, carts)
	assert.EqualValues(t, 0, items)
}

func TestCheckout_UsesCurrentPrice(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)
	user := mustUser(t, db, "alice")
	cat := mustCategory(t, db, "misc", "Misc")
	p := mustProduct(t, db, "Tee", "10.00", true, cat.ID)

	require.NoError(t, cartSvc.Add(user.ID, p.ID))

	// Price change after add; checkout reads the live price.
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", p.ID).
		Update("price", decimal.NewFromInt(12)).Error)

	order, err := svc.Checkout(user.ID)
	require.NoError(t, err)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(12)), "got %s", order.TotalPrice)
}

func TestCheckout_EmptyCartMakesZeroTotalOrder(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)
	user := mustUser(t, db, "alice")

	// Viewing creates the (empty) cart.
	_, _, err := cartSvc.View(user.ID)
	require.NoError(t, err)

	order, err := svc.Checkout(user.ID)
	require.NoError(t, err)
	assert.True(t, order.TotalPrice.IsZero())

	var carts int64
	db.Model(&entity.Cart{}).Where("user_id = ?", user.ID).Count(&carts)
	assert.EqualValues(t, 0, carts)
}

func TestCheckout_NoCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	user := mustUser(t, db, "alice")

	// Checkout never creates a cart lazily, unlike viewing.
	_, err := svc.Checkout(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var orders int64
	db.Model(&entity.Order{}).Count(&orders)
	assert.EqualValues(t, 0, orders)
}

func TestListOrders_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)
	user := mustUser(t, db, "alice")
	cat := mustCategory(t, db, "misc", "Misc")
	p := mustProduct(t, db, "Tee", "10.00", true, cat.ID)

	require.NoError(t, cartSvc.Add(user.ID, p.ID))
	first, err := svc.Checkout(user.ID)
	require.NoError(t, err)

	require.NoError(t, cartSvc.Add(user.ID, p.ID))
	second, err := svc.Checkout(user.ID)
	require.NoError(t, err)

	orders, err := svc.ListOrders(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
