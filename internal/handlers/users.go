package handlers

import (
	"github.com/gin-gonic/gin"

	"spicestore-backend/internal/models"
)

// GetUsers lists all users with the password field stripped.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.store.Users(c.Request.Context())
	if err != nil {
		c.String(500, "Server error")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	for i := range users {
		users[i].Password = ""
	}
	c.JSON(200, users)
}
