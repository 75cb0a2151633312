package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"spicestore-backend/internal/models"
	"spicestore-backend/internal/store"
)

type placeOrderRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// PlaceOrder converts the user's cart into an order. The sequence is
// insert-order then clear-cart with no transaction: a crash in between
// leaves the cart populated and a retry places the order again
// (at-least-once).
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Cart is empty"})
		return
	}
	cart, err := h.store.Cart(c.Request.Context(), req.UserID)
	if err == store.ErrNoCart {
		c.JSON(400, gin.H{"message": "Cart is empty"})
		return
	}
	if err != nil {
		c.String(500, "Server error")
		return
	}
	if len(cart.Products) == 0 {
		c.JSON(400, gin.H{"message": "Cart is empty"})
		return
	}
	products, err := h.store.ProductsByIDs(c.Request.Context(), cart.Products)
	if err != nil {
		c.String(500, "Server error")
		return
	}
	// References to since-deleted products resolve to nothing; a cart of
	// only stale references counts as empty.
	if len(products) == 0 {
		c.JSON(400, gin.H{"message": "Cart is empty"})
		return
	}
	lines := make([]models.OrderProduct, 0, len(products))
	total := 0.0
	for _, p := range products {
		lines = append(lines, models.OrderProduct{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  1,
		})
		total += p.Price
	}
	now := time.Now()
	order := models.Order{
		UserID:      cart.UserID,
		Products:    lines,
		TotalAmount: total,
		Status:      "Pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.store.CreateOrder(c.Request.Context(), &order); err != nil {
		c.String(500, "Server error")
		return
	}
	if err := h.store.ClearCart(c.Request.Context(), req.UserID); err != nil {
		c.String(500, "Server error")
		return
	}
	c.JSON(200, gin.H{"message": "Order placed", "order": order})
}

// GetOrders lists the orders for the user named in the path.
func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.store.OrdersByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.String(500, "Server error")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(200, orders)
}

// GetAllOrders lists every order in the system.
func (h *Handler) GetAllOrders(c *gin.Context) {
	orders, err := h.store.Orders(c.Request.Context())
	if err != nil {
		c.String(500, "Server error")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(200, orders)
}
