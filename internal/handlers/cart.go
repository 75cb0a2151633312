package handlers

import (
	"github.com/gin-gonic/gin"

	"spicestore-backend/internal/models"
	"spicestore-backend/internal/store"
)

type cartRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

// AddToCart finds or creates the user's cart and appends the product
// reference only if it is not already present.
func (h *Handler) AddToCart(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input"})
		return
	}
	cart, err := h.store.AddToCart(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	c.JSON(200, gin.H{"message": "Added to cart", "cart": cart})
}

// GetCart returns the cart with product references resolved to full records.
func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.store.Cart(c.Request.Context(), c.Param("userId"))
	if err == store.ErrNoCart {
		c.String(404, "Cart empty")
		return
	}
	if err != nil {
		c.String(500, "Server error")
		return
	}
	products, err := h.store.ProductsByIDs(c.Request.Context(), cart.Products)
	if err != nil {
		c.String(500, "Server error")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(200, gin.H{
		"_id":      cart.ID,
		"userId":   cart.UserID,
		"products": products,
	})
}

// RemoveFromCart filters the product out of the cart's list. A missing cart
// surfaces as a generic 500, matching the behavior of the service this
// replaces.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input"})
		return
	}
	cart, err := h.store.RemoveFromCart(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		c.String(500, "Server error")
		return
	}
	c.JSON(200, gin.H{"message": "Removed", "cart": cart})
}
