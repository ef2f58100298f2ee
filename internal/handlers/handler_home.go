package handlers

import (
	"net/http"

	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/middleware"
	"github.com/dukaan-apps/duka_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// registerHealthRoute registers the unauthenticated health check. With
// ENABLE_DB_CHECK on it also pings the record store, so load balancers can
// drain an instance whose database has gone away.
func registerHealthRoute(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		if cfg.EnableDBCheck {
			if err := services.Aggregator.Ping(c.Request.Context()); err != nil {
				logger := middleware.GetLoggerFromCtx(c.Request.Context())
				logger.Error("Health check database ping failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
