package handlers

import (
	"github.com/gin-gonic/gin"

	"spicestore-backend/internal/models"
	"spicestore-backend/internal/store"
)

type addProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	AdminID     string  `json:"adminId"`
}

func (h *Handler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Missing fields"})
		return
	}
	if req.Name == "" || req.Category == "" || req.Price == 0 || req.Image == "" {
		c.JSON(400, gin.H{"message": "Missing fields"})
		return
	}
	product := models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		AdminID:     req.AdminID,
	}
	if err := h.store.CreateProduct(c.Request.Context(), &product); err != nil {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	c.JSON(201, gin.H{"message": "Product added", "product": product})
}

// GetProducts returns the full catalog, unfiltered and unpaginated.
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.store.Products(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(200, products)
}

// UpdateProduct applies a partial field replace by id.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req models.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input"})
		return
	}
	product, err := h.store.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err == store.ErrNotFound {
		c.JSON(404, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	c.JSON(200, gin.H{"message": "Product updated successfully", "product": product})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	err := h.store.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		c.JSON(404, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	c.JSON(200, gin.H{"message": "Product deleted successfully"})
}
