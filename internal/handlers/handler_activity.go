package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/dto"
	"github.com/dukaan-apps/duka_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// defaultActivityLimit pages the standalone activity feed.
const defaultActivityLimit = 20

// activityHandler serves the standalone activity feed endpoint.
type activityHandler struct {
	store      portssvc.StoreSvc
	aggregator portssvc.AggregatorSvc
}

// registerActivityRoutes registers the activity feed endpoint.
func registerActivityRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &activityHandler{store: services.Store, aggregator: services.Aggregator}
	rg.GET("/activity", h.getActivity)
}

// getActivity godoc
// @Summary Get the store activity feed
// @Description Returns the newest activity log entries for the caller's store
// @Tags activity
// @Produce json
// @Param limit query int false "Max entries" default(20) minimum(1) maximum(100)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "No store associated"
// @Security BearerAuth
// @Router /activity [get]
func (h *activityHandler) getActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query dto.ActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid activity query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	limit := query.Limit
	if limit == 0 {
		limit = defaultActivityLimit
	}

	membership, err := h.store.ResolveMembership(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	entries, err := h.aggregator.RecentActivity(c.Request.Context(), membership.StoreID, limit)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": entries})
}
