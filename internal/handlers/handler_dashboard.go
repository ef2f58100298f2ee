package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/dto"
	"github.com/dukaan-apps/duka_backend/internal/middleware"
	"github.com/dukaan-apps/duka_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles the real-time dashboard endpoint.
type dashboardHandler struct {
	cfg   *config.Config
	store portssvc.StoreSvc
	dash  portssvc.DashboardSvc
}

func newDashboardHandler(cfg *config.Config, store portssvc.StoreSvc, dash portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{cfg: cfg, store: store, dash: dash}
}

// registerDashboardRoutes registers the dashboard endpoint.
func registerDashboardRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newDashboardHandler(cfg, services.Store, services.Dashboard)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the store dashboard
// @Description Computes the full dashboard summary for the caller's store in real time
// @Tags dashboard
// @Produce json
// @Param currency query string false "Report currency" default(USD)
// @Param startDate query string false "Range start (YYYY-MM-DD)" default(first day of current month)
// @Param endDate query string false "Range end (YYYY-MM-DD)" default(today)
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "No store associated"
// @Failure 502 {object} map[string]string "Record store unreachable"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid dashboard query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	currency := query.Currency
	if currency == "" {
		currency = h.cfg.DefaultCurrency
	}

	from, to, err := query.Window(time.Now(), h.cfg.StoreTimezone)
	if err != nil {
		logger.Warn("Invalid dashboard range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be before or equal to endDate"})
		return
	}

	membership, err := h.store.ResolveMembership(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger = logger.With(
		slog.String("user_id", userID),
		slog.String("store_id", membership.StoreID),
		slog.String("currency", currency),
	)

	summary, err := h.dash.BuildDashboard(c.Request.Context(), membership.StoreID, currency, from, to, membership.Role)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Dashboard built")
	c.JSON(http.StatusOK, summary)
}
