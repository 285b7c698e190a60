// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lojaviva/loja-backend/internal/config"
	"github.com/lojaviva/loja-backend/internal/handlers"
	"github.com/lojaviva/loja-backend/internal/middleware"
	"github.com/lojaviva/loja-backend/internal/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Services
	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(db)
	reviewService := services.NewReviewService(db)
	auditService := services.NewAuditService(db)
	paymentProvider := services.NewStripeProvider(cfg)
	checkoutService := services.NewCheckoutService(db, cfg, paymentProvider)

	// Only fails on a bad AWS session; without credentials it returns
	// the local-development stub.
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage service")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(checkoutService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	adminHandler := handlers.NewAdminHandler(catalogService, storageService, auditService)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "loja-backend",
		})
	})

	v1 := r.Group("/v1")
	v1.Use(middleware.AuditLogMiddleware(db))

	// Authentication
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
		auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
	}

	// Catalog (public)
	products := v1.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/top-sellers", catalogHandler.GetTopSellers)
		products.GET("/top-rated", catalogHandler.GetTopRated)
		products.GET("/cheapest", catalogHandler.GetCheapest)
		products.GET("/promotions", catalogHandler.GetPromotions)
		products.GET("/:id", catalogHandler.GetProduct)
		products.GET("/:id/reviews", catalogHandler.GetProductReviews)
		products.POST("/:id/reviews", middleware.AuthRequired(), reviewHandler.SubmitReview)
	}

	// Cart
	cart := v1.Group("/cart")
	cart.Use(middleware.AuthRequired())
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/lines", cartHandler.AddToCart)
		cart.DELETE("/lines/:id", cartHandler.RemoveCartLine)
	}

	// Checkout and orders
	v1.POST("/checkout", middleware.AuthRequired(), orderHandler.Checkout)
	v1.GET("/orders", middleware.AuthRequired(), orderHandler.GetOrders)

	// Admin
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/categories", adminHandler.CreateCategory)
		admin.GET("/categories", adminHandler.ListCategories)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.POST("/products/:id/images", middleware.UploadRateLimit(), adminHandler.UploadProductImage)
		admin.GET("/audit-logs", adminHandler.ListAuditLogs)
	}

	return r
}
