// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// Services bundles the domain services the routes dispatch into
type Services struct {
	Sessions  *session.Service
	Products  *product.Service
	Carts     *cart.Service
	Wishlists *wishlist.Service
}

// SetupRoutes wires every storefront intent to its handler. Each route maps
// 1:1 to a domain operation.
func SetupRoutes(rg *gin.RouterGroup, svc Services) {
	setupAuthRoutes(rg, svc)
	setupProductRoutes(rg, svc)
	setupCartRoutes(rg, svc)
	setupWishlistRoutes(rg, svc)
}

// setupAuthRoutes sets up the login/registration flow
func setupAuthRoutes(rg *gin.RouterGroup, svc Services) {
	authHandler := handlers.NewAuthHandler(svc.Sessions)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.RequireSession())
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.Profile)
		}
	}
}

// setupProductRoutes sets up catalog browsing and filtering
func setupProductRoutes(rg *gin.RouterGroup, svc Services) {
	productHandler := handlers.NewProductHandler(svc.Products)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/featured", productHandler.GetFeatured)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// setupCartRoutes sets up the cart ledger. Reads tolerate anonymous callers
// (an empty cart); mutations are rejected by the cart service itself when no
// user is signed in.
func setupCartRoutes(rg *gin.RouterGroup, svc Services) {
	cartHandler := handlers.NewCartHandler(svc.Carts)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}
}

// setupWishlistRoutes sets up the wishlist set
func setupWishlistRoutes(rg *gin.RouterGroup, svc Services) {
	wishlistHandler := handlers.NewWishlistHandler(svc.Wishlists)

	wishlistGroup := rg.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/toggle", wishlistHandler.Toggle)
		wishlistGroup.GET("/contains/:id", wishlistHandler.Contains)
	}
}
