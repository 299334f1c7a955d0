package services

import (
	"backend/entity"
	"backend/repository"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

type ProductListing struct {
	Category   *entity.Category  `json:"category"`
	Categories []entity.Category `json:"categories"`
	Products   []entity.Product  `json:"products"`
}

// List returns the navigation categories plus available products. A slug
// scopes the products to that category and 404s when unknown.
func (s *CatalogService) List(categorySlug string) (*ProductListing, error) {
	categories, err := s.Repo.FindAllCategories()
	if err != nil {
		return nil, err
	}

	var category *entity.Category
	var categoryID *uint
	if categorySlug != "" {
		category, err = s.Repo.FindCategoryBySlug(categorySlug)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
	}

	products, err := s.Repo.FindAvailableProducts(categoryID)
	if err != nil {
		return nil, err
	}

	return &ProductListing{Category: category, Categories: categories, Products: products}, nil
}

// Detail treats unavailable products as nonexistent.
func (s *CatalogService) Detail(id uint) (*entity.Product, error) {
	return s.Repo.FindAvailableProductByID(id)
}

// Search matches the name as a case-insensitive substring. An empty query
// yields an empty result set, not all products.
func (s *CatalogService) Search(query string) ([]entity.Product, error) {
	if query == "" {
		return []entity.Product{}, nil
	}
	return s.Repo.SearchProductsByName(query)
}

func (s *CatalogService) Discover() ([]entity.Product, error) {
	return s.Repo.FindAllProducts()
}
