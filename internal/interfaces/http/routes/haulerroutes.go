package routes

import (
	"github.com/gin-gonic/gin"

	harborhandlers "harbormaster/internal/interfaces/http/handlers/harbor"
	haulerhandlers "harbormaster/internal/interfaces/http/handlers/hauler"
)

type HaulerRouteConfig struct {
	HaulerHandler *haulerhandlers.HaulerHandler
	HarborHandler *harborhandlers.HarborHandler
	WriteLimiter  gin.HandlerFunc
}

func SetupHaulerRoutes(engine *gin.Engine, config *HaulerRouteConfig) {
	haulers := engine.Group("/haulers")
	{
		haulers.POST("", withLimiter(config.WriteLimiter, config.HaulerHandler.CreateHauler)...)
		haulers.GET("", config.HaulerHandler.ListHaulers)

		haulers.GET("/:id/ships", config.HarborHandler.GetHaulerShips)

		haulers.GET("/:id", config.HaulerHandler.GetHauler)
		haulers.PUT("/:id", withLimiter(config.WriteLimiter, config.HaulerHandler.UpdateHauler)...)
	}
}
