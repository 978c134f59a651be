// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Service) *CartHandler {
	return &CartHandler{
		carts: carts,
	}
}

// AddToCartRequest represents an add-to-cart intent
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// UpdateQuantityRequest represents a set-quantity intent. The pointer keeps
// an explicit zero distinguishable from an absent field.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	response, err := h.carts.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": response,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.carts.Add(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		h.renderCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Added to cart!",
		"data":    response,
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.carts.UpdateQuantity(c.Request.Context(), sessionID, uint(productID), *req.Quantity)
	if err != nil {
		h.renderCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    response,
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	response, err := h.carts.Remove(c.Request.Context(), sessionID, uint(productID))
	if err != nil {
		h.renderCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Removed from cart",
		"data":    response,
	})
}

// renderCartError maps domain sentinels to HTTP responses with user-visible
// notices
func (h *CartHandler) renderCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrSignInRequired):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   middleware.NoticeSignInRequired,
			"message": "You need to be logged in to add items to cart.",
		})
	case errors.Is(err, product.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, cart.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "This product is out of stock.",
		})
	case errors.Is(err, cart.ErrNegativeQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity cannot be negative.",
		})
	case errors.Is(err, cart.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Cart operation failed",
		})
	}
}
