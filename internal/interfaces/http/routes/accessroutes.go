package routes

import (
	"github.com/gin-gonic/gin"

	"devfolio/internal/interfaces/http/handlers"
)

type AccessRouteConfig struct {
	AccessHandler *handlers.AccessHandler
	// RateLimit guards the visitor-facing request endpoint. Nil when rate
	// limiting is disabled.
	RateLimit gin.HandlerFunc
}

func SetupAccessRoutes(engine *gin.Engine, config *AccessRouteConfig) {
	access := engine.Group("/api/access")
	{
		if config.RateLimit != nil {
			access.POST("", config.RateLimit, config.AccessHandler.HandleAction)
		} else {
			access.POST("", config.AccessHandler.HandleAction)
		}
		access.GET("", config.AccessHandler.Check)

		// Admin links carried by the notification email.
		access.GET("/approve", config.AccessHandler.Approve)
		access.GET("/deny", config.AccessHandler.Deny)
		access.GET("/requests", config.AccessHandler.ListRequests)
	}
}
