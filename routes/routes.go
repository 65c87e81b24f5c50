package routes

import (
	"net/http"
	"time"

	"frontdesk/handlers"
	"frontdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, resHandler *handlers.ReservationHandler, roomHandler *handlers.RoomHandler, authHandler *handlers.AuthHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Terminal sign-in happens before a staff token exists.
	r.POST("/api/v1/auth/token", authHandler.IssueToken)

	api := r.Group("/api/v1")
	api.Use(middleware.StaffAuthMiddleware())

	RegisterReservationRoutes(api, resHandler)

	rooms := api.Group("/rooms")
	{
		rooms.GET("/availability", roomHandler.Availability)
	}

	store := api.Group("/store")
	{
		store.PUT("/action-pin", authHandler.SetActionPin)
	}
}
