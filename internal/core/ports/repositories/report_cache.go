package repositories

import (
	"context"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
)

// ReportCacheRepository reads the pre-computed report snapshot an external
// scheduled job maintains per store. A missing snapshot is reported as
// apperrors.ErrNotFound; the caller degrades to real-time computation and
// never treats a miss as a failure.
type ReportCacheRepository interface {
	GetSnapshot(ctx context.Context, storeID string) (*domain.CachedReport, error)
}
