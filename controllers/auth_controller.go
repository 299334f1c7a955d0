package controllers

import (
	"errors"
	"net/http"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	// Set when the user was sent to login mid add-to-cart; the add is
	// resumed right after authentication.
	ProductID uint `json:"productId"`
}

type AuthController struct {
	Svc     *services.AuthService
	CartSvc *services.CartService
}

func NewAuthController(s *services.AuthService, cs *services.CartService) *AuthController {
	return &AuthController{Svc: s, CartSvc: cs}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Username, req.Password, req.PasswordConfirm)
	if err != nil {
		if errors.Is(err, services.ErrPasswordMismatch) || errors.Is(err, services.ErrUsernameTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	payload := gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "username": user.Username, "role": user.Role},
	}

	// Resume the pending add-to-cart, if any. Login itself succeeded, so
	// a failed add is reported inside the payload rather than as a 4xx.
	if req.ProductID != 0 {
		if err := a.CartSvc.Add(user.ID, req.ProductID); err != nil {
			payload["addError"] = "product not found"
		} else {
			payload["addedProductId"] = req.ProductID
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": payload})
}

// POST /auth/logout — tokens are stateless, the client just drops its copy.
func (a *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}
