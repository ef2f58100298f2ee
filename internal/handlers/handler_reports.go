package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/dto"
	"github.com/dukaan-apps/duka_backend/internal/middleware"
	"github.com/dukaan-apps/duka_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// reportHandler handles the multi-tab reports endpoint.
type reportHandler struct {
	cfg    *config.Config
	store  portssvc.StoreSvc
	report portssvc.ReportSvc
}

func newReportHandler(cfg *config.Config, store portssvc.StoreSvc, report portssvc.ReportSvc) *reportHandler {
	return &reportHandler{cfg: cfg, store: store, report: report}
}

// registerReportRoutes registers the reports endpoint.
func registerReportRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newReportHandler(cfg, services.Store, services.Report)
	rg.GET("/reports", h.getReport)
}

// getReport godoc
// @Summary Get one report tab
// @Description Serves one tab of the reports screen, from the snapshot cache when possible
// @Tags reports
// @Produce json
// @Param view query string true "Report tab" Enums(sales, finance, inventory, purchases, debts, customers, hr)
// @Param currency query string false "Report currency" default(USD)
// @Param startDate query string false "Range start (YYYY-MM-DD)" default(first day of current month)
// @Param endDate query string false "Range end (YYYY-MM-DD)" default(today)
// @Success 200 {object} domain.TabReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "No store associated"
// @Failure 502 {object} map[string]string "Record store unreachable"
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	currency := query.Currency
	if currency == "" {
		currency = h.cfg.DefaultCurrency
	}

	from, to, err := query.Window(time.Now(), h.cfg.StoreTimezone)
	if err != nil {
		logger.Warn("Invalid report range", slog.String("error", err.Error()))
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
		slog.String("view", query.View),
		slog.String("currency", currency),
	)

	report, err := h.report.GetReport(c.Request.Context(), membership.StoreID, domain.ReportView(query.View), currency, from, to, membership.Role)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Report served")
	c.JSON(http.StatusOK, report)
}
