package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scenarios-conductor/internal/api/handlers"
	"scenarios-conductor/internal/api/middleware"
	"scenarios-conductor/internal/urban"
)

// SetupRoutes configures the operational HTTP surface: health endpoints and
// the Prometheus scrape target.
func SetupRoutes(urbanClient urban.Client, registry *prometheus.Registry) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(urbanClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return router
}
