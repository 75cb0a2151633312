package handlers

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"spicestore-backend/internal/models"
	"spicestore-backend/internal/store"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Register creates a user. The email-exists check is a plain lookup, not
// atomic with the insert.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input"})
		return
	}
	_, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err == nil {
		c.JSON(400, gin.H{"message": "User already exists"})
		return
	}
	if err != store.ErrNotFound {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	role := req.Role
	if role == "" {
		role = "user"
	}
	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	c.JSON(201, gin.H{"message": "User registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the password and issues a signed token carrying the user id.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input"})
		return
	}
	user, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err == store.ErrNotFound {
		c.JSON(400, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(401, gin.H{"message": "Wrong password"})
		return
	}
	claims := JWTClaims{
		UserID: user.ID.Hex(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(h.cfg.TokenExpires).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		c.JSON(500, gin.H{"message": "Server error"})
		return
	}
	var pic interface{}
	if user.ProfilePic != "" {
		pic = user.ProfilePic
	}
	c.JSON(200, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"token":      tokenStr,
			"role":       user.Role,
			"name":       user.Name,
			"email":      user.Email,
			"_id":        user.ID,
			"profilePic": pic,
		},
	})
}

// GetProfile returns the authenticated caller's record, password stripped.
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.store.UserByID(c.Request.Context(), c.GetString("userId"))
	if err == store.ErrNotFound {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		c.String(500, "Server error")
		return
	}
	user.Password = ""
	c.JSON(200, user)
}
