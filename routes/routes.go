package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	checkoutSvc := services.NewCheckoutService(db, orderRepo, cartRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cartSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)

	// Catalog (public)
	r.GET("/", catalogCtrl.Home)
	r.GET("/discover", catalogCtrl.Discover)
	r.GET("/search", catalogCtrl.Search)
	r.GET("/products", catalogCtrl.List)
	r.GET("/products/:id", catalogCtrl.Detail)
	r.GET("/cart", cartCtrl.Landing)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.POST("/logout", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Logout)

	// Cart + checkout (user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart/detail", cartCtrl.Detail)
		u.POST("/cart/add/:productId", cartCtrl.Add)
		u.POST("/cart/remove/:itemId", cartCtrl.Remove)
		u.POST("/checkout", checkoutCtrl.Checkout)
		u.GET("/orders", checkoutCtrl.ListOrders)
	}
}
