package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukaan-apps/duka_backend/internal/apperrors"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/middleware"
	"github.com/dukaan-apps/duka_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHealthRoute(r, cfg, services)

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerDashboardRoutes(v1, cfg, services)
	registerReportRoutes(v1, cfg, services)
	registerActivityRoutes(v1, services)
}

// respondWithError maps a service error onto the HTTP surface. Membership
// failures read as forbidden, an unreachable record store as a bad gateway.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrNoStore):
		logger.Warn("User has no store membership")
		c.JSON(http.StatusForbidden, gin.H{"error": "No store is associated with your account"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Error("Record store unreachable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Reporting backend is temporarily unavailable"})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
