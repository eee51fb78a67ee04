package routes

import (
	"github.com/gin-gonic/gin"

	"devfolio/internal/interfaces/http/handlers"
)

type PortfolioRouteConfig struct {
	PortfolioHandler *handlers.PortfolioHandler
}

func SetupPortfolioRoutes(engine *gin.Engine, config *PortfolioRouteConfig) {
	engine.GET("/api/portfolio", config.PortfolioHandler.Get)
}
