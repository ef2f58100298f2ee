package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/apperrors"
	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockAgg   *MockAggregatorSvc
	mockTrend *MockTrendSvc
	service   portssvc.DashboardSvc
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockAgg = new(MockAggregatorSvc)
	suite.mockTrend = new(MockTrendSvc)
	suite.service = services.NewDashboardService(suite.mockAgg, suite.mockTrend)
}

// expectHappyPath wires every aggregation the dashboard fans out to.
func (suite *DashboardServiceTestSuite) expectHappyPath(ctx context.Context, from, to time.Time) {
	suite.mockAgg.On("Ping", ctx).Return(nil).Once()

	// Today's figures use the current calendar day, not the report range.
	notRangeStart := mock.MatchedBy(func(t time.Time) bool { return !t.Equal(from) })
	suite.mockAgg.On("SalesRevenue", ctx, "store-1", "USD", notRangeStart, mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(60), nil).Once()
	suite.mockAgg.On("SalesCount", ctx, "store-1", "USD", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(int64(2), nil).Once()

	suite.mockAgg.On("SalesRevenue", ctx, "store-1", "USD", from, to).
		Return(decimal.NewFromInt(900), nil).Once()
	suite.mockAgg.On("IncomeTotal", ctx, "store-1", "USD", from, to).
		Return(decimal.NewFromInt(950), nil).Once()
	suite.mockAgg.On("ExpenseTotal", ctx, "store-1", "USD", from, to).
		Return(decimal.NewFromInt(450), nil).Once()
	suite.mockAgg.On("DebtNewAmount", ctx, "store-1", "USD", from, to).
		Return(decimal.NewFromInt(120), nil).Once()
	suite.mockAgg.On("DebtOutstanding", ctx, "store-1", "USD").
		Return(decimal.NewFromInt(300), nil).Once()
	suite.mockAgg.On("PayableOutstanding", ctx, "store-1", "USD").
		Return(decimal.NewFromInt(150), nil).Once()
	suite.mockAgg.On("ProductCount", ctx, "store-1").Return(int64(40), nil).Once()
	suite.mockAgg.On("StockOverview", ctx, "store-1").
		Return(&domain.StockOverview{LowStockCount: 2}, nil).Once()
	suite.mockAgg.On("RecentActivity", ctx, "store-1", 10).
		Return([]domain.ActivityLogEntry{{EntryID: "a1"}}, nil).Once()
	suite.mockAgg.On("ComparePerformance", ctx, "store-1", "USD", from, to).
		Return(&domain.PerformanceComparison{
			CurrentRevenue:  decimal.NewFromInt(900),
			ProfitChangePct: decimal.NewFromInt(30),
		}, nil).Once()

	// One balance query per active USD payment method.
	for _, method := range []string{"CASH", "BANK", "ZAAD", "EDAHAB"} {
		suite.mockAgg.On("RunningAccountBalance", ctx, "store-1", "USD", method).
			Return(decimal.NewFromInt(25), nil).Once()
	}

	suite.mockTrend.On("SalesData", ctx, "store-1", "USD", from, to).
		Return(&domain.SalesData{
			TotalSalesCount: 12,
			TopProducts:     []domain.ProductSales{{ProductID: "p1", Name: "Rice 25kg", Revenue: decimal.NewFromInt(400)}},
		}, nil).Once()
	suite.mockTrend.On("IncomeExpenseTrend", ctx, "store-1", "USD", from, to).
		Return([]domain.TrendPoint{{Date: "2026-03-01"}}, nil).Once()
	suite.mockTrend.On("ExpenseBreakdown", ctx, "store-1", "USD", from, to).
		Return([]domain.CategoryAmount{{Name: "Rent", Value: decimal.NewFromInt(100)}}, nil).Once()
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_AdminSeesEverything() {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	suite.expectHappyPath(ctx, from, to)

	summary, err := suite.service.BuildDashboard(ctx, "store-1", "USD", from, to, domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.True(summary.TotalRevenue.Equal(decimal.NewFromInt(900)))
	suite.True(summary.NetProfit.Equal(decimal.NewFromInt(450)), "net profit = revenue - expenses")
	suite.False(summary.NetProfit.Equal(decimal.NewFromInt(500)), "the income ledger does not feed net profit")
	suite.True(summary.ProfitMargin.Equal(decimal.NewFromInt(50)), "margin is profit over revenue")
	suite.True(summary.CashBalance.Equal(decimal.NewFromInt(25)), "cash balance mirrors the CASH method")
	suite.Len(summary.AccountBalances, 4)
	suite.Equal(int64(12), summary.Sales.TotalSalesCount)
	suite.Len(summary.ActivityFeed, 1)
	suite.Len(summary.Trend, 1)
	suite.Contains(summary.SmartInsight, "Great job")
	suite.Contains(summary.SmartInsight, "Rice 25kg")

	suite.mockAgg.AssertExpectations(suite.T())
	suite.mockTrend.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_StaffGetsRedactedSummary() {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	suite.expectHappyPath(ctx, from, to)

	summary, err := suite.service.BuildDashboard(ctx, "store-1", "USD", from, to, domain.RoleStaff)

	suite.Require().NoError(err)
	// Financials are gone, operational figures remain.
	suite.True(summary.NetProfit.IsZero())
	suite.True(summary.CashBalance.IsZero())
	suite.Nil(summary.AccountBalances)
	suite.Equal(services.RedactedInsight, summary.SmartInsight)
	suite.True(summary.TotalRevenue.Equal(decimal.NewFromInt(900)))
	suite.Equal(int64(40), summary.ProductCount)
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_PartialFailureDegradesToZero() {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	suite.mockAgg.On("Ping", ctx).Return(nil).Once()
	// Everything fails except today's count.
	suite.mockAgg.On("SalesRevenue", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, assert.AnError)
	suite.mockAgg.On("SalesCount", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(3), nil)
	suite.mockAgg.On("IncomeTotal", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, assert.AnError)
	suite.mockAgg.On("ExpenseTotal", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, assert.AnError)
	suite.mockAgg.On("DebtNewAmount", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, assert.AnError)
	suite.mockAgg.On("DebtOutstanding", ctx, mock.Anything, mock.Anything).
		Return(decimal.Zero, assert.AnError)
	suite.mockAgg.On("PayableOutstanding", ctx, mock.Anything, mock.Anything).
		Return(decimal.Zero, assert.AnError)
	suite.mockAgg.On("ProductCount", ctx, mock.Anything).Return(int64(0), assert.AnError)
	suite.mockAgg.On("StockOverview", ctx, mock.Anything).Return(nil, assert.AnError)
	suite.mockAgg.On("RecentActivity", ctx, mock.Anything, mock.Anything).Return(nil, assert.AnError)
	suite.mockAgg.On("ComparePerformance", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	suite.mockAgg.On("RunningAccountBalance", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, assert.AnError)
	suite.mockTrend.On("SalesData", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	suite.mockTrend.On("IncomeExpenseTrend", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	suite.mockTrend.On("ExpenseBreakdown", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	summary, err := suite.service.BuildDashboard(ctx, "store-1", "USD", from, to, domain.RoleAdmin)

	// Partial data beats a failed dashboard.
	suite.Require().NoError(err)
	suite.Equal(int64(3), summary.TodaySalesCount)
	suite.True(summary.TotalRevenue.IsZero())
	suite.True(summary.NetProfit.IsZero())
	suite.True(summary.ProfitMargin.IsZero(), "no division by a zero revenue")
	suite.Empty(summary.ActivityFeed)
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_UnreachableStoreFails() {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	suite.mockAgg.On("Ping", ctx).Return(context.DeadlineExceeded).Once()

	summary, err := suite.service.BuildDashboard(ctx, "store-1", "USD", from, to, domain.RoleAdmin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.Nil(summary)

	suite.mockAgg.AssertNotCalled(suite.T(), "SalesRevenue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_SLSHBalancesSkipBank() {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	suite.mockAgg.On("Ping", ctx).Return(nil).Once()
	suite.mockAgg.On("SalesRevenue", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil)
	suite.mockAgg.On("SalesCount", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil)
	suite.mockAgg.On("IncomeTotal", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil)
	suite.mockAgg.On("ExpenseTotal", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil)
	suite.mockAgg.On("DebtNewAmount", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil)
	suite.mockAgg.On("DebtOutstanding", ctx, mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	suite.mockAgg.On("PayableOutstanding", ctx, mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	suite.mockAgg.On("ProductCount", ctx, mock.Anything).Return(int64(0), nil)
	suite.mockAgg.On("StockOverview", ctx, mock.Anything).Return(&domain.StockOverview{}, nil)
	suite.mockAgg.On("RecentActivity", ctx, mock.Anything, mock.Anything).
		Return([]domain.ActivityLogEntry{}, nil)
	suite.mockAgg.On("ComparePerformance", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.PerformanceComparison{}, nil)
	suite.mockTrend.On("SalesData", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.SalesData{}, nil)
	suite.mockTrend.On("IncomeExpenseTrend", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.TrendPoint{}, nil)
	suite.mockTrend.On("ExpenseBreakdown", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.CategoryAmount{}, nil)

	for _, method := range []string{"CASH", "ZAAD", "EDAHAB"} {
		suite.mockAgg.On("RunningAccountBalance", ctx, "store-1", "SLSH", method).
			Return(decimal.NewFromInt(10), nil).Once()
	}

	summary, err := suite.service.BuildDashboard(ctx, "store-1", "SLSH", from, to, domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.Len(summary.AccountBalances, 3)
	suite.mockAgg.AssertNotCalled(suite.T(), "RunningAccountBalance", ctx, "store-1", "SLSH", "BANK")
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
