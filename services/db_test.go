package services

import (
	"fmt"
	"testing"

	"backend/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Each test gets its own named in-memory database so they cannot see each
// other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{},
	))
	return db
}

func mustUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func mustCategory(t *testing.T, db *gorm.DB, slug, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{Slug: slug, Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func mustProduct(t *testing.T, db *gorm.DB, name, price string, available bool, categoryID uint) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Available:  available,
		CategoryID: categoryID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
