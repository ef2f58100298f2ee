package services

import (
	"context"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
)

// ReportSvc serves the multi-tab reports endpoint. Per request it decides
// whether the pre-computed cache can answer (fast path) or whether the tab
// pipeline must recompute from records (slow path). Either way the tab is
// redacted per the caller's role before it is returned.
type ReportSvc interface {
	GetReport(ctx context.Context, storeID string, view domain.ReportView, currency string, from, to time.Time, role domain.StoreRole) (*domain.TabReport, error)
}
