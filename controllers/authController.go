package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sanchitsharma1/Bizdash/auth"
	"github.com/sanchitsharma1/Bizdash/config"
	"github.com/sanchitsharma1/Bizdash/middlewares"
	"github.com/sanchitsharma1/Bizdash/models"
)

type AuthController struct {
	gate *auth.Gate
}

func NewAuthController(gate *auth.Gate) *AuthController {
	return &AuthController{gate: gate}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the operator credentials and issues a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	token, expiresAt, err := ac.gate.Authenticate(req.Username, req.Password)
	switch {
	case errors.Is(err, models.ErrAuthNotConfigured):
		config.LogError("auth", "login", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "login is not configured on the server"})
		return
	case errors.Is(err, models.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid username or password"})
		return
	case err != nil:
		config.LogError("auth", "login", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "login successful",
		"user":      gin.H{"username": req.Username},
		"token":     token,
		"expiresAt": expiresAt.UTC().Format(time.RFC3339),
	})
}

// Verify lets a client confirm a held token is still good.
func (ac *AuthController) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{"username": middlewares.Username(c)},
	})
}
