package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) FindAllCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) FindCategoryBySlug(slug string) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.Where("slug = ?", slug).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// Every product, availability ignored (discover page).
func (r *CatalogRepository) FindAllProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Find(&products).Error
	return products, err
}

// Browsing surface only shows available products; pass a category id to
// scope the listing.
func (r *CatalogRepository) FindAvailableProducts(categoryID *uint) ([]entity.Product, error) {
	q := r.DB.Where("available = ?", true)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	var products []entity.Product
	err := q.Find(&products).Error
	return products, err
}

// Unavailable products are invisible to the detail view.
func (r *CatalogRepository) FindAvailableProductByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("available = ?", true).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Lookup without the availability filter (add-to-cart path).
func (r *CatalogRepository) FindProductByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) SearchProductsByName(query string) ([]entity.Product, error) {
	products := []entity.Product{}
	err := r.DB.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Find(&products).Error
	return products, err
}
