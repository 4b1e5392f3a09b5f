// Package http wires the HTTP surface: repositories, use cases, handlers,
// middleware, and routes.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"harbormaster/internal/application/common"
	dockusecases "harbormaster/internal/application/dock/usecases"
	harborusecases "harbormaster/internal/application/harbor/usecases"
	haulerusecases "harbormaster/internal/application/hauler/usecases"
	shipusecases "harbormaster/internal/application/ship/usecases"
	"harbormaster/internal/domain/assignment"
	"harbormaster/internal/infrastructure/config"
	"harbormaster/internal/infrastructure/ratelimit"
	"harbormaster/internal/infrastructure/repository"
	dockhandlers "harbormaster/internal/interfaces/http/handlers/dock"
	harborhandlers "harbormaster/internal/interfaces/http/handlers/harbor"
	haulerhandlers "harbormaster/internal/interfaces/http/handlers/hauler"
	shiphandlers "harbormaster/internal/interfaces/http/handlers/ship"
	"harbormaster/internal/interfaces/http/middleware"
	"harbormaster/internal/interfaces/http/routes"
	"harbormaster/internal/shared/db"
	"harbormaster/internal/shared/logger"
	"harbormaster/internal/shared/services/markdown"
	"harbormaster/internal/shared/utils"
)

// Router holds the configured gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(log))
	if len(cfg.Server.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}

	dockRepo := repository.NewDockRepository(database, log)
	haulerRepo := repository.NewHaulerRepository(database, log)
	shipRepo := repository.NewShipRepository(database, log)

	registry := common.NewAssignmentRegistry(shipRepo, dockRepo, haulerRepo)
	ruleEngine := assignment.NewEngine(registry, registry)
	guard := assignment.NewGuard()
	txManager := db.NewTransactionManager(database)
	renderer := markdown.NewRenderer()

	createDockUC := dockusecases.NewCreateDockUseCase(dockRepo, log)
	getDockUC := dockusecases.NewGetDockUseCase(dockRepo, log)
	listDocksUC := dockusecases.NewListDocksUseCase(dockRepo, log)
	updateDockUC := dockusecases.NewUpdateDockUseCase(dockRepo, ruleEngine, guard, log)
	dockStatusUC := dockusecases.NewUpdateDockStatusUseCase(dockRepo, log)

	createHaulerUC := haulerusecases.NewCreateHaulerUseCase(haulerRepo, log)
	getHaulerUC := haulerusecases.NewGetHaulerUseCase(haulerRepo, log)
	listHaulersUC := haulerusecases.NewListHaulersUseCase(haulerRepo, log)
	updateHaulerUC := haulerusecases.NewUpdateHaulerUseCase(haulerRepo, ruleEngine, guard, log)

	createShipUC := shipusecases.NewCreateShipUseCase(shipRepo, dockRepo, haulerRepo, ruleEngine, guard, log)
	getShipUC := shipusecases.NewGetShipUseCase(shipRepo, dockRepo, haulerRepo, log)
	listShipsUC := shipusecases.NewListShipsUseCase(shipRepo, dockRepo, haulerRepo, log)
	updateShipUC := shipusecases.NewUpdateShipUseCase(shipRepo, dockRepo, haulerRepo, ruleEngine, guard, txManager, log)

	dockViewUC := harborusecases.NewGetDockWithShipsUseCase(dockRepo, shipRepo, renderer, log)
	haulerViewUC := harborusecases.NewGetHaulerWithShipsUseCase(haulerRepo, shipRepo, log)

	dockHandler := dockhandlers.NewDockHandler(createDockUC, getDockUC, listDocksUC, updateDockUC, dockStatusUC, log)
	haulerHandler := haulerhandlers.NewHaulerHandler(createHaulerUC, getHaulerUC, listHaulersUC, updateHaulerUC, log)
	shipHandler := shiphandlers.NewShipHandler(createShipUC, getShipUC, listShipsUC, updateShipUC, log)
	harborHandler := harborhandlers.NewHarborHandler(dockViewUC, haulerViewUC, log)

	var writeLimiter gin.HandlerFunc
	if cfg.RateLimit.Enabled && cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		writeLimiter = middleware.NewWriteRateLimiter(limiter, ratelimit.Config{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
		}).Limit()
	}

	routes.SetupDockRoutes(engine, &routes.DockRouteConfig{
		DockHandler:   dockHandler,
		HarborHandler: harborHandler,
		WriteLimiter:  writeLimiter,
	})
	routes.SetupHaulerRoutes(engine, &routes.HaulerRouteConfig{
		HaulerHandler: haulerHandler,
		HarborHandler: harborHandler,
		WriteLimiter:  writeLimiter,
	})
	routes.SetupShipRoutes(engine, &routes.ShipRouteConfig{
		ShipHandler:  shipHandler,
		WriteLimiter: writeLimiter,
	})

	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
