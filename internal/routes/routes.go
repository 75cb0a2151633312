// Package routes wires the HTTP surface onto a gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"spicestore-backend/internal/handlers"
)

// Register mounts every endpoint under the /api prefix. Only /getprofile
// sits behind the bearer guard; the remaining routes are open, matching the
// service this replaces.
func Register(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")

	// Auth
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	// OTP
	api.POST("/email", h.VerifyEmail)
	api.POST("/otp", h.VerifyOtp)

	// Products
	api.POST("/addproduct", h.AddProduct)
	api.GET("/products", h.GetProducts)
	api.PUT("/products/:id", h.UpdateProduct)
	api.DELETE("/products/:id", h.DeleteProduct)

	// Cart
	api.POST("/addtocart", h.AddToCart)
	api.GET("/cart/:userId", h.GetCart)
	api.POST("/removefromcart", h.RemoveFromCart)

	// Users
	api.GET("/users", h.GetUsers)

	// Orders
	api.POST("/placeorder", h.PlaceOrder)
	api.GET("/orders/:userId", h.GetOrders)
	api.GET("/orders", h.GetAllOrders)

	// Profile
	api.GET("/getprofile", h.Auth, h.GetProfile)
}
