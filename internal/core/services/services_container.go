package services

import (
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/platform/config"
)

// NewServiceContainer wires the full service graph from the repository
// provider. The aggregator and trend services feed both the dashboard and the
// report assembler.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	aggregator := NewAggregatorService(repos.RecordQueryRepo)
	trend := NewTrendService(repos.RecordQueryRepo)

	return &portssvc.ServiceContainer{
		Store:      NewStoreService(repos.StoreRepo),
		Aggregator: aggregator,
		Trend:      trend,
		Dashboard:  NewDashboardService(aggregator, trend),
		Report: NewReportService(
			aggregator,
			trend,
			repos.RecordQueryRepo,
			repos.ReportCacheRepo,
			cfg.EnableReportCache,
			cfg.StoreTimezone,
		),
	}
}
