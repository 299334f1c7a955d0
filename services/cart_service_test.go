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

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
}

func TestView_CreatesCartLazily(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := mustUser(t, db, "alice")

	cart, subtotal, err := svc.View(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, subtotal.IsZero())

	// Idempotent: a second view reuses the same cart.
	again, _, err := svc.View(user.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)

	var count int64
	db.Model(&entity.Cart{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAdd_DoubleAddIncrementsQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := mustUser(t, db, "alice")
	cat := mustCategory(t, db, "clothing", "Clothing")
	p := mustProduct(t, db, "Denim Jacket", "49.50", true, cat.ID)

	require.NoError(t, svc.Add(user.ID, p.ID))
	require.NoError(t, svc.Add(user.ID, p.ID))

	var items []entity.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, p.ID, items[0].ProductID)
}

func TestAdd_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := mustUser(t, db, "alice")

	err := svc.Add(user.ID, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdd_UnavailableProductStillAllowed(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := mustUser(t, db, "alice")
	cat := mustCategory(t, db, "clothing", "Clothing")
	p := mustProduct(t, db, "Wool Scarf", "15.00", false, cat.ID)

	// The add path does not consult the available flag.
	require.NoError(t, svc.Add(user.ID, p.ID))

	cart, subtotal, err := svc.View(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, subtotal.Equal(decimal.RequireFromString("15.00")))
}

func TestView_SubtotalSumsPriceTimesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := mustUser(t, db, "alice")
	cat := mustCategory(t, db, "misc", "Misc")
	p1 := mustProduct(t, db, "Tee", "10.00", true, cat.ID)
	p2 := mustProduct(t, db, "Novel", "5.00", true, cat.ID)

	require.NoError(t, svc.Add(user.ID, p1.ID))
	require.NoError(t, svc.Add(user.ID, p1.ID))
	require.NoError(t, svc.Add(user.ID, p2.ID))

	cart, subtotal, err := svc.View(user.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.True(t, subtotal.Equal(decimal.NewFromInt(25)), "got %s", subtotal)
}

func TestRemove_DeletesOwnItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := mustUser(t, db, "alice")
	cat := mustCategory(t, db, "misc", "Misc")
	p := mustProduct(t, db, "Tee", "10.00", true, cat.ID)

	require.NoError(t, svc.Add(user.ID, p.ID))
	var item entity.CartItem
	require.NoError(t, db.First(&item).Error)

	require.NoError(t, svc.Remove(user.ID, item.ID))

	var count int64
	db.Model(&entity.CartItem{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRemove_OtherUsersItemLooksMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	owner := mustUser(t, db, "alice")
	intruder := mustUser(t, db, "mallory")
	cat := mustCategory(t, db, "misc", "Misc")
	p := mustProduct(t, db, "Tee", "10.00", true, cat.ID)

	require.NoError(t, svc.Add(owner.ID, p.ID))
	var item entity.CartItem
	require.NoError(t, db.First(&item).Error)

	err := svc.Remove(intruder.ID, item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The row survives.
	var count int64
	db.Model(&entity.CartItem{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRemove_UnknownItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := mustUser(t, db, "alice")

	err := svc.Remove(user.ID, 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
