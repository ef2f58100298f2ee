package services

import (
	"context"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
)

// DashboardSvc assembles the full dashboard summary for one request. All
// aggregations run concurrently; individual failures degrade to zero values
// and only a wholly unreachable record store fails the request.
type DashboardSvc interface {
	BuildDashboard(ctx context.Context, storeID, currency string, from, to time.Time, role domain.StoreRole) (*domain.DashboardSummary, error)
}
