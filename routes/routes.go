package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanchitsharma1/Bizdash/auth"
	"github.com/sanchitsharma1/Bizdash/controllers"
	"github.com/sanchitsharma1/Bizdash/middlewares"
	"github.com/sanchitsharma1/Bizdash/repository"
)

// RegisterRoutes wires every API endpoint. Login is the only /api route
// reachable without a session token.
func RegisterRoutes(router *gin.Engine, db *sql.DB, gate *auth.Gate) {
	expenses := controllers.NewResourceController(repository.NewExpenseRepository(db), "expense")
	earnings := controllers.NewResourceController(repository.NewEarningRepository(db), "earning")
	inventory := controllers.NewResourceController(repository.NewInventoryRepository(db), "inventory item")
	summary := controllers.NewSummaryController(repository.NewSummaryReader(db))
	session := controllers.NewAuthController(gate)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/auth/login", session.Login)

	protected := api.Group("", middlewares.AuthMiddleware(gate))
	{
		protected.GET("/auth/verify", session.Verify)

		// Expense routes
		protected.POST("/expenses", expenses.Create)
		protected.GET("/expenses", expenses.List)
		protected.GET("/expenses/:id", expenses.Get)
		protected.PUT("/expenses/:id", expenses.Update)
		protected.DELETE("/expenses/:id", expenses.Delete)

		// Earning routes
		protected.POST("/earnings", earnings.Create)
		protected.GET("/earnings", earnings.List)
		protected.GET("/earnings/:id", earnings.Get)
		protected.PUT("/earnings/:id", earnings.Update)
		protected.DELETE("/earnings/:id", earnings.Delete)

		// Inventory routes
		protected.POST("/inventory", inventory.Create)
		protected.GET("/inventory", inventory.List)
		protected.GET("/inventory/:id", inventory.Get)
		protected.PUT("/inventory/:id", inventory.Update)
		protected.DELETE("/inventory/:id", inventory.Delete)

		// Summary route
		protected.GET("/summary", summary.GetSummary)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "route not found"})
	})
}
