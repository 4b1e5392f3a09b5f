package routes

import (
	"github.com/gin-gonic/gin"

	shiphandlers "harbormaster/internal/interfaces/http/handlers/ship"
)

type ShipRouteConfig struct {
	ShipHandler  *shiphandlers.ShipHandler
	WriteLimiter gin.HandlerFunc
}

func SetupShipRoutes(engine *gin.Engine, config *ShipRouteConfig) {
	ships := engine.Group("/ships")
	{
		ships.POST("", withLimiter(config.WriteLimiter, config.ShipHandler.CreateShip)...)
		ships.GET("", config.ShipHandler.ListShips)

		ships.GET("/:id", config.ShipHandler.GetShip)
		ships.PUT("/:id", withLimiter(config.WriteLimiter, config.ShipHandler.UpdateShip)...)
	}
}
