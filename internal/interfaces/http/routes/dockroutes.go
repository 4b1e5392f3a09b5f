package routes

import (
	"github.com/gin-gonic/gin"

	dockhandlers "harbormaster/internal/interfaces/http/handlers/dock"
	harborhandlers "harbormaster/internal/interfaces/http/handlers/harbor"
)

type DockRouteConfig struct {
	DockHandler   *dockhandlers.DockHandler
	HarborHandler *harborhandlers.HarborHandler
	WriteLimiter  gin.HandlerFunc
}

func SetupDockRoutes(engine *gin.Engine, config *DockRouteConfig) {
	docks := engine.Group("/docks")
	{
		docks.POST("", withLimiter(config.WriteLimiter, config.DockHandler.CreateDock)...)
		docks.GET("", config.DockHandler.ListDocks)

		// Specific paths before the parameterized ones
		docks.POST("/:id/activate", withLimiter(config.WriteLimiter, config.DockHandler.ActivateDock)...)
		docks.POST("/:id/deactivate", withLimiter(config.WriteLimiter, config.DockHandler.DeactivateDock)...)
		docks.GET("/:id/ships", config.HarborHandler.GetDockShips)

		docks.GET("/:id", config.DockHandler.GetDock)
		docks.PUT("/:id", withLimiter(config.WriteLimiter, config.DockHandler.UpdateDock)...)
	}
}

// withLimiter prepends the write limiter when one is configured.
func withLimiter(limiter gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	if limiter == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{limiter, handler}
}
