package configs

import (
	"log"

	"backend/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Username: username,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Demo catalog so a fresh database has something to browse.
// FirstOrCreate keeps reruns idempotent.
func SeedCatalog() error {
	db := DB()

	categories := []entity.Category{
		{Slug: "clothing", Name: "Clothing"},
		{Slug: "electronics", Name: "Electronics"},
		{Slug: "books", Name: "Books"},
	}
	for i := range categories {
		if err := db.Where(entity.Category{Slug: categories[i].Slug}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	products := []entity.Product{
		{Name: "Plain White Tee", Price: decimal.RequireFromString("9.99"), Available: true, CategoryID: categories[0].ID},
		{Name: "Denim Jacket", Price: decimal.RequireFromString("49.50"), Available: true, CategoryID: categories[0].ID},
		{Name: "Wool Scarf", Price: decimal.RequireFromString("15.00"), Available: false, CategoryID: categories[0].ID},
		{Name: "Wireless Earbuds", Price: decimal.RequireFromString("89.00"), Available: true, CategoryID: categories[1].ID},
		{Name: "USB-C Charger", Price: decimal.RequireFromString("19.90"), Available: true, CategoryID: categories[1].ID},
		{Name: "Paperback Novel", Price: decimal.RequireFromString("7.25"), Available: true, CategoryID: categories[2].ID},
	}
	for i := range products {
		if err := db.Where(entity.Product{Name: products[i].Name, CategoryID: products[i].CategoryID}).
			FirstOrCreate(&products[i]).Error; err != nil {
			return err
		}
	}

	log.Println("catalog seeded")
	return nil
}
