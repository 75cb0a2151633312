package handlers

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type JWTClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// Auth guards a route with a bearer token. On success the subject's id is
// placed in the context under "userId".
func (h *Handler) Auth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(401, gin.H{"message": "Token missing"})
		return
	}
	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" {
		c.AbortWithStatusJSON(401, gin.H{"message": "Invalid token format"})
		return
	}
	token, err := jwt.ParseWithClaims(parts[1], &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(401, gin.H{"message": "Unauthorized user"})
		return
	}
	claims := token.Claims.(*JWTClaims)
	c.Set("userId", claims.UserID)
	c.Next()
}
