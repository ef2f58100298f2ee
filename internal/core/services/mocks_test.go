package services_test

import (
	"context"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockRecordQueryRepository is a mock type for the RecordQueryRepository interface
type MockRecordQueryRepository struct {
	mock.Mock
}

func (m *MockRecordQueryRepository) SumField(ctx context.Context, filter portsrepo.RecordFilter, field string) (decimal.Decimal, error) {
	args := m.Called(ctx, filter, field)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRecordQueryRepository) CountRecords(ctx context.Context, filter portsrepo.RecordFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordQueryRepository) FindSales(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockRecordQueryRepository) FindLedger(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockRecordQueryRepository) FindDebts(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.Debt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockRecordQueryRepository) FindPurchases(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.Purchase, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockRecordQueryRepository) FindProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockRecordQueryRepository) LowStockProducts(ctx context.Context, storeID string, limit int) ([]domain.Product, int64, error) {
	args := m.Called(ctx, storeID, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecordQueryRepository) CountProducts(ctx context.Context, storeID string) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordQueryRepository) RecentActivity(ctx context.Context, storeID string, limit int) ([]domain.ActivityLogEntry, error) {
	args := m.Called(ctx, storeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLogEntry), args.Error(1)
}

func (m *MockRecordQueryRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStoreRepository is a mock type for the StoreRepository interface
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindMembershipByUser(ctx context.Context, userID string) (*domain.StoreMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreMembership), args.Error(1)
}

// MockReportCacheRepository is a mock type for the ReportCacheRepository interface
type MockReportCacheRepository struct {
	mock.Mock
}

func (m *MockReportCacheRepository) GetSnapshot(ctx context.Context, storeID string) (*domain.CachedReport, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedReport), args.Error(1)
}

// MockAggregatorSvc is a mock type for the AggregatorSvc interface
type MockAggregatorSvc struct {
	mock.Mock
}

func (m *MockAggregatorSvc) SalesRevenue(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) SalesCount(ctx context.Context, storeID, currency string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAggregatorSvc) IncomeTotal(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) ExpenseTotal(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) DebtNewAmount(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) DebtOutstanding(ctx context.Context, storeID, currency string) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) DebtCollected(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) PurchaseTotal(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) PayableOutstanding(ctx context.Context, storeID, currency string) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) RunningAccountBalance(ctx context.Context, storeID, currency, method string) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency, method)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) ProductCount(ctx context.Context, storeID string) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAggregatorSvc) StockOverview(ctx context.Context, storeID string) (*domain.StockOverview, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockOverview), args.Error(1)
}

func (m *MockAggregatorSvc) StockValue(ctx context.Context, storeID, currency string) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregatorSvc) RecentActivity(ctx context.Context, storeID string, limit int) ([]domain.ActivityLogEntry, error) {
	args := m.Called(ctx, storeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLogEntry), args.Error(1)
}

func (m *MockAggregatorSvc) ComparePerformance(ctx context.Context, storeID, currency string, from, to time.Time) (*domain.PerformanceComparison, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PerformanceComparison), args.Error(1)
}

func (m *MockAggregatorSvc) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTrendSvc is a mock type for the TrendSvc interface
type MockTrendSvc struct {
	mock.Mock
}

func (m *MockTrendSvc) IncomeExpenseTrend(ctx context.Context, storeID, currency string, from, to time.Time) ([]domain.TrendPoint, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrendPoint), args.Error(1)
}

func (m *MockTrendSvc) SalesTrend(ctx context.Context, storeID, currency string, from, to time.Time) ([]domain.TrendPoint, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrendPoint), args.Error(1)
}

func (m *MockTrendSvc) ExpenseBreakdown(ctx context.Context, storeID, currency string, from, to time.Time) ([]domain.CategoryAmount, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryAmount), args.Error(1)
}

func (m *MockTrendSvc) SalesData(ctx context.Context, storeID, currency string, from, to time.Time) (*domain.SalesData, error) {
	args := m.Called(ctx, storeID, currency, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesData), args.Error(1)
}
