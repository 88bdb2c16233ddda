package server

import (
	"time"

	"geosolar-backoffice/internal/config"
	"geosolar-backoffice/internal/handlers"
	"geosolar-backoffice/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes. The guard runs on every request;
// the route groups below only organize handlers, all allow/deny decisions
// live in the rbac tables.
func NewRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.Guard())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", middleware.LoginRateLimit(), handlers.Login)
	if cfg.AllowRegistration {
		r.POST("/register", handlers.Register)
	}

	r.Static("/uploads", cfg.UploadDir)

	// Public marketing-site endpoints
	public := r.Group("/api/public")
	{
		public.POST("/contact", handlers.SubmitContact)
		public.POST("/quotes", handlers.SubmitQuote)
		public.GET("/pages/:slug", handlers.GetPublishedPage)
	}

	api := r.Group("/api")
	{
		// Catalog: reads for all staff, writes gated by method in the guard
		api.GET("/categories", handlers.ListCategories)
		api.POST("/categories", handlers.CreateCategory)
		api.PUT("/categories/:id", handlers.UpdateCategory)
		api.DELETE("/categories/:id", handlers.DeleteCategory)

		api.GET("/products", handlers.ListProducts)
		api.GET("/products/:id", handlers.GetProduct)
		api.POST("/products", handlers.CreateProduct)
		api.PUT("/products/:id", handlers.UpdateProduct)
		api.DELETE("/products/:id", handlers.DeleteProduct)

		// Inventory ledger
		api.GET("/inventory", handlers.ListInventory)
		api.PUT("/inventory", handlers.UpsertStock)
		api.GET("/inventory/low-stock", handlers.ListLowStock)
		api.GET("/inventory/quantity", handlers.GetQuantity)

		// Sales: create/read only, sales are immutable
		api.POST("/sales", handlers.CreateSale)
		api.GET("/sales", handlers.ListSales)
		api.GET("/sales/:id", handlers.GetSale)

		// Reports
		api.GET("/reports/sales", handlers.GetSalesReport)
		api.GET("/reports/valuation", handlers.GetStockValuation)

		// Back-office administration
		admin := api.Group("/admin")
		{
			admin.GET("/users", handlers.ListUsers)
			admin.POST("/users", handlers.CreateUser)
			admin.PUT("/users/:id/active", handlers.SetUserActive)
			admin.DELETE("/users/:id", handlers.DeleteUser)

			admin.GET("/pages", handlers.ListPages)
			admin.POST("/pages", handlers.CreatePage)
			admin.PUT("/pages/:id", handlers.UpdatePage)
			admin.DELETE("/pages/:id", handlers.DeletePage)

			admin.POST("/media", handlers.UploadFile)
			admin.GET("/media", handlers.ListMedia)

			admin.GET("/contact-messages", handlers.ListContactMessages)
			admin.GET("/quote-requests", handlers.ListQuoteRequests)
		}
	}

	return r
}
