package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zeldean/DBD-Project/internal/config"
	"github.com/Zeldean/DBD-Project/internal/handlers"
	"github.com/Zeldean/DBD-Project/internal/middleware"
	"github.com/Zeldean/DBD-Project/internal/repository"
)

// UserStore is everything the route table needs from the users collection:
// handler lookups plus the credential check.
type UserStore interface {
	handlers.UserStore
	middleware.CredentialStore
}

// Stores groups the three collection stores behind interfaces so tests can
// mount the full route table over fakes.
type Stores struct {
	Users    UserStore
	Products handlers.ProductStore
	Orders   handlers.OrderStore
}

// RegisterRoutes wires the mongo-backed repositories into the route table.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	RegisterWithStores(router, cfg, Stores{
		Users:    repository.NewUserRepository(db.Collection("users")),
		Products: repository.NewProductRepository(db.Collection("products")),
		Orders:   repository.NewOrderRepository(db.Collection("orders")),
	})
}

// RegisterWithStores mounts the canonical route set. The legacy
// unauthenticated /users, /products, and /orders drafts are gone; the
// /api/* groups are the only surface.
func RegisterWithStores(router *gin.Engine, cfg *config.Config, stores Stores) {
	public := handlers.NewPublicHandler(stores.Users, stores.Products)
	user := handlers.NewUserHandler(stores.Products, stores.Orders)
	admin := handlers.NewAdminHandler(stores.Users, stores.Products, stores.Orders)

	router.Use(middleware.RequestID())

	pub := router.Group("/api/public", middleware.RequireRegion())
	{
		pub.POST("/register", public.Register)
		pub.GET("/products", public.ListProducts)
	}

	usr := router.Group("/api/user", middleware.RequireRegion(), middleware.Authenticate(stores.Users))
	{
		usr.GET("/profile", user.Profile)
		usr.GET("/orders", user.ListOrders)
		usr.POST("/orders", user.CreateOrder)
		usr.DELETE("/orders/:id", user.DeleteOrder)
		usr.GET("/spending", user.Spending)
		usr.GET("/reviews", user.ListReviews)
		usr.POST("/reviews", user.AddReview)
		usr.PUT("/reviews/:productId", user.UpdateReview)
	}

	adm := router.Group("/api/admin", middleware.RequireAdminToken(cfg.AdminToken))
	{
		adm.GET("/users", middleware.RequireRegion(), admin.ListUsers)
		adm.GET("/orders", middleware.RequireRegion(), admin.ListOrders)
		adm.GET("/products", middleware.RequireRegion(), admin.ListProducts)
		// Product deletion is the one admin operation that is not
		// region-scoped.
		adm.DELETE("/product/:id", admin.DeleteProduct)
		adm.GET("/stats/sales", middleware.RequireRegion(), admin.SalesStats)
	}
}
