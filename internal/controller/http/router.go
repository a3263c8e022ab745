// Package http wires the operational HTTP surface: health, metrics and the
// inventory API.
package http

import (
	"net/http"

	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/device-management-toolkit/redfish-inventory/config"
	v1 "github.com/device-management-toolkit/redfish-inventory/internal/controller/http/v1"
	"github.com/device-management-toolkit/redfish-inventory/internal/usecase/inventory"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

// NewRouter registers every route on handler. store may be nil.
func NewRouter(handler *gin.Engine, l logger.Interface, cfg *config.Config, latest inventory.SnapshotSource, store inventory.Store) {
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1.NewInventoryRoutes(&handler.RouterGroup, latest, store, l)

	if cfg.HTTP.Pprof {
		ginpprof.Register(handler, "debug/pprof")
		l.Info("pprof enabled at /debug/pprof/")
	}

	handler.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
}
