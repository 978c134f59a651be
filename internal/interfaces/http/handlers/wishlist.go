// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlists *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlists *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{
		wishlists: wishlists,
	}
}

// ToggleRequest represents a toggle-wishlist intent
type ToggleRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	items, err := h.wishlists.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items": items,
			"count": len(items),
		},
	})
}

// Toggle handles POST /wishlist/toggle
func (h *WishlistHandler) Toggle(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.wishlists.Toggle(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, wishlist.ErrSignInRequired):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   middleware.NoticeSignInRequired,
				"message": "You need to be logged in to add items to wishlist.",
			})
		case errors.Is(err, product.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Wishlist operation failed",
			})
		}
		return
	}

	message := "Removed from wishlist"
	if result.Wishlisted {
		message = "Added to wishlist!"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    result,
	})
}

// Contains handles GET /wishlist/contains/:id
func (h *WishlistHandler) Contains(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	wishlisted, err := h.wishlists.Contains(c.Request.Context(), sessionID, uint(productID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"product_id": uint(productID),
			"wishlisted": wishlisted,
		},
	})
}
