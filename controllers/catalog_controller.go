package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CatalogController struct {
	Svc *services.CatalogService
}

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

// GET /
func (h *CatalogController) Home(c *gin.Context) {
	resp.OK(c, gin.H{"message": "welcome to the shop"})
}

// GET /discover — every product, available or not
func (h *CatalogController) Discover(c *gin.Context) {
	products, err := h.Svc.Discover()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"products": products})
}

// GET /search?q=
func (h *CatalogController) Search(c *gin.Context) {
	query := c.Query("q")
	results, err := h.Svc.Search(query)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"results": results, "query": query})
}

// GET /products?category=<slug>
func (h *CatalogController) List(c *gin.Context) {
	listing, err := h.Svc.List(c.Query("category"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, listing)
}

// GET /products/:id
func (h *CatalogController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"product": product})
}
