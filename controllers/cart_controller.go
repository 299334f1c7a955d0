package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart — public placeholder, the detail view needs auth
func (h *CartController) Landing(c *gin.Context) {
	resp.OK(c, gin.H{"message": "log in to see your cart"})
}

// GET /cart/detail
func (h *CartController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	cart, subtotal, err := h.Svc.View(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/add/:productId
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	if err := h.Svc.Add(uid, uint(productID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "added to cart"})
}

// POST /cart/remove/:itemId
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := h.Svc.Remove(uid, uint(itemID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "removed from cart"})
}
