package routes

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, pointHandler *handler.PointHandler) {
	pointRoutes := router.Group("/point")
	{
		// GET /point/:userId
		pointRoutes.GET("/:userId", pointHandler.GetPoint)

		// GET /point/:userId/histories
		pointRoutes.GET("/:userId/histories", pointHandler.GetHistories)

		// PATCH /point/:userId/charge
		pointRoutes.PATCH("/:userId/charge", pointHandler.Charge)

		// PATCH /point/:userId/use
		pointRoutes.PATCH("/:userId/use", pointHandler.Use)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(middleware.NoRoute())
}

// SetupMetricsRoute exposes the Prometheus handler at /metrics
func SetupMetricsRoute(router *gin.Engine, metricsHandler http.Handler) {
	router.GET("/metrics", gin.WrapH(metricsHandler))
}

// SetupMiddlewares configures global middlewares for the API.
// observer may be nil when metrics are disabled.
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	observer middleware.RequestObserver,
	requestTimeout time.Duration,
) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
	router.Use(middleware.RequestTimeout(requestTimeout))
}
