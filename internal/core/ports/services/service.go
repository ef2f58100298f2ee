package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this at route registration and depend only on the interfaces.
type ServiceContainer struct {
	Store      StoreSvc
	Aggregator AggregatorSvc
	Trend      TrendSvc
	Dashboard  DashboardSvc
	Report     ReportSvc
}
