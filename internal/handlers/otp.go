package handlers

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"time"

	"github.com/gin-gonic/gin"

	"spicestore-backend/internal/models"
	"spicestore-backend/internal/store"
)

// Codes expire this long after issue; a newer request for the same email
// overwrites the old code before that.
const otpTTL = 10 * time.Minute

func generateOtp() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 100000, nil
}

type verifyEmailRequest struct {
	Email string `json:"email"`
}

// VerifyEmail issues a 6-digit code for an address not yet registered,
// upserts it keyed by email and dispatches it over SMTP.
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.String(400, "Email is required")
		return
	}
	_, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err == nil {
		c.String(400, "User already exists")
		return
	}
	if err != store.ErrNotFound {
		c.String(500, "Server error")
		return
	}
	otp, err := generateOtp()
	if err != nil {
		c.String(500, "Server error")
		return
	}
	rec := models.OtpRequest{Email: req.Email, Otp: otp, CreatedAt: time.Now()}
	if err := h.store.SaveOtp(c.Request.Context(), &rec); err != nil {
		c.String(500, "Server error")
		return
	}
	if err := h.mailer.SendOtp(req.Email, otp); err != nil {
		c.String(500, "Server error")
		return
	}
	c.JSON(200, gin.H{"message": "OTP sent"})
}

type verifyOtpRequest struct {
	Email string      `json:"email"`
	Otp   json.Number `json:"otp"`
}

// VerifyOtp checks a submitted code. A code is good for one use within
// otpTTL of issue and is deleted once accepted.
func (h *Handler) VerifyOtp(c *gin.Context) {
	var req verifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(400, "Invalid OTP")
		return
	}
	otp, err := req.Otp.Int64()
	if err != nil {
		c.String(400, "Invalid OTP")
		return
	}
	rec, err := h.store.OtpByEmailAndCode(c.Request.Context(), req.Email, int(otp))
	if err == store.ErrNotFound {
		c.String(400, "Invalid OTP")
		return
	}
	if err != nil {
		c.String(500, "Server error")
		return
	}
	if time.Since(rec.CreatedAt) > otpTTL {
		c.String(400, "Invalid OTP")
		return
	}
	if err := h.store.DeleteOtp(c.Request.Context(), req.Email); err != nil {
		c.String(500, "Server error")
		return
	}
	c.String(200, "success")
}
