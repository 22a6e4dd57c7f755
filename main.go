// main.go
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanchitsharma1/Bizdash/auth"
	"github.com/sanchitsharma1/Bizdash/config"
	"github.com/sanchitsharma1/Bizdash/middlewares"
	"github.com/sanchitsharma1/Bizdash/routes"
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg.LogLevel)
	logg := config.GetLogger()

	if err := cfg.Validate(); err != nil {
		logg.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize the database.
	if err := config.InitDB(cfg.SQLiteDBPath); err != nil {
		logg.Fatalf("Failed to initialize database: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middlewares.RequestLogger(logg))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logg.WithField("panic", recovered).Error("handler panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}))

	gate := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, cfg.TokenLifespan)

	// Register the API routes.
	routes.RegisterRoutes(router, config.DB, gate)

	logg.Infof("Starting server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logg.Fatalf("Failed to run server: %v", err)
	}
}
