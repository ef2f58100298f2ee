package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/apperrors"
	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/utils/timeperiod"
	"github.com/shopspring/decimal"
)

// activityFeedLimit bounds the dashboard activity preview.
const activityFeedLimit = 10

// dashboardService implements the DashboardSvc interface by fanning out to
// the aggregator and trend services and joining the results.
type dashboardService struct {
	BaseService
	aggregator portssvc.AggregatorSvc
	trend      portssvc.TrendSvc
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(aggregator portssvc.AggregatorSvc, trend portssvc.TrendSvc) portssvc.DashboardSvc {
	return &dashboardService{aggregator: aggregator, trend: trend}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// BuildDashboard runs every dashboard aggregation concurrently and joins them
// into one summary. A failing sub-aggregation degrades to its zero value; the
// request fails only when the record store is unreachable outright. The
// finished summary is redacted per the caller's role before it is returned.
func (s *dashboardService) BuildDashboard(ctx context.Context, storeID, currency string, from, to time.Time, role domain.StoreRole) (*domain.DashboardSummary, error) {
	if err := s.aggregator.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: record store unreachable: %v", apperrors.ErrUpstream, err)
	}

	logger := s.GetLogger(ctx).With(
		slog.String("store_id", storeID),
		slog.String("currency", currency))

	todayFrom := timeperiod.DayStart(time.Now().In(from.Location()))
	todayTo := timeperiod.DayEnd(todayFrom)

	summary := &domain.DashboardSummary{
		StoreID:  storeID,
		Currency: currency,
		From:     from,
		To:       to,
	}

	var (
		salesBundle *domain.SalesData
		stock       *domain.StockOverview
		performance *domain.PerformanceComparison
	)

	gather(
		func() {
			summary.TodaySalesTotal = amountOrZero(logger, "dashboard.todaySalesTotal", func() (decimal.Decimal, error) {
				return s.aggregator.SalesRevenue(ctx, storeID, currency, todayFrom, todayTo)
			})
		},
		func() {
			summary.TodaySalesCount = countOrZero(logger, "dashboard.todaySalesCount", func() (int64, error) {
				return s.aggregator.SalesCount(ctx, storeID, currency, todayFrom, todayTo)
			})
		},
		func() {
			summary.TotalRevenue = amountOrZero(logger, "dashboard.totalRevenue", func() (decimal.Decimal, error) {
				return s.aggregator.SalesRevenue(ctx, storeID, currency, from, to)
			})
		},
		func() {
			summary.TotalIncomes = amountOrZero(logger, "dashboard.totalIncomes", func() (decimal.Decimal, error) {
				return s.aggregator.IncomeTotal(ctx, storeID, currency, from, to)
			})
		},
		func() {
			summary.TotalExpenses = amountOrZero(logger, "dashboard.totalExpenses", func() (decimal.Decimal, error) {
				return s.aggregator.ExpenseTotal(ctx, storeID, currency, from, to)
			})
		},
		func() {
			summary.NewDebtsAmount = amountOrZero(logger, "dashboard.newDebts", func() (decimal.Decimal, error) {
				return s.aggregator.DebtNewAmount(ctx, storeID, currency, from, to)
			})
		},
		func() {
			summary.OutstandingDebts = amountOrZero(logger, "dashboard.outstandingDebts", func() (decimal.Decimal, error) {
				return s.aggregator.DebtOutstanding(ctx, storeID, currency)
			})
		},
		func() {
			summary.Payables = amountOrZero(logger, "dashboard.payables", func() (decimal.Decimal, error) {
				return s.aggregator.PayableOutstanding(ctx, storeID, currency)
			})
		},
		func() {
			summary.ProductCount = countOrZero(logger, "dashboard.productCount", func() (int64, error) {
				return s.aggregator.ProductCount(ctx, storeID)
			})
		},
		func() {
			var err error
			salesBundle, err = s.trend.SalesData(ctx, storeID, currency, from, to)
			if err != nil {
				logger.Warn("sales bundle degraded to empty", slog.String("error", err.Error()))
			}
		},
		func() {
			var err error
			stock, err = s.aggregator.StockOverview(ctx, storeID)
			if err != nil {
				logger.Warn("stock overview degraded to empty", slog.String("error", err.Error()))
			}
		},
		func() {
			feed, err := s.aggregator.RecentActivity(ctx, storeID, activityFeedLimit)
			if err != nil {
				logger.Warn("activity feed degraded to empty", slog.String("error", err.Error()))
				return
			}
			summary.ActivityFeed = feed
		},
		func() {
			trend, err := s.trend.IncomeExpenseTrend(ctx, storeID, currency, from, to)
			if err != nil {
				logger.Warn("trend degraded to empty", slog.String("error", err.Error()))
				return
			}
			summary.Trend = trend
		},
		func() {
			breakdown, err := s.trend.ExpenseBreakdown(ctx, storeID, currency, from, to)
			if err != nil {
				logger.Warn("expense breakdown degraded to empty", slog.String("error", err.Error()))
				return
			}
			summary.Expenses = breakdown
		},
		func() {
			var err error
			performance, err = s.aggregator.ComparePerformance(ctx, storeID, currency, from, to)
			if err != nil {
				logger.Warn("performance comparison degraded to empty", slog.String("error", err.Error()))
			}
		},
		func() {
			summary.AccountBalances, summary.CashBalance = s.accountBalances(ctx, logger, storeID, currency)
		},
	)

	if salesBundle != nil {
		summary.Sales = *salesBundle
	}
	if stock != nil {
		summary.Stock = *stock
	}
	if performance != nil {
		summary.Performance = *performance
	}

	// Profit is taken against sales revenue; the income ledger stays out of it.
	summary.NetProfit = summary.TotalRevenue.Sub(summary.TotalExpenses)
	if summary.TotalRevenue.GreaterThan(decimal.Zero) {
		summary.ProfitMargin = summary.NetProfit.Div(summary.TotalRevenue).Mul(oneHundred)
	}

	topProduct := ""
	if len(summary.Sales.TopProducts) > 0 {
		topProduct = summary.Sales.TopProducts[0].Name
	}
	summary.SmartInsight = GenerateInsight(summary.Performance.ProfitChangePct, topProduct)

	return RedactSummary(summary, role), nil
}

// accountBalances computes the running balance of every payment method active
// for the currency, one concurrent query pair per method. CASH doubles as the
// headline cash balance.
func (s *dashboardService) accountBalances(ctx context.Context, logger *slog.Logger, storeID, currency string) ([]domain.AccountBalance, decimal.Decimal) {
	methods := domain.PaymentMethodsForCurrency(currency)
	balances := make([]domain.AccountBalance, len(methods))

	tasks := make([]func(), len(methods))
	for i, method := range methods {
		i, method := i, method
		tasks[i] = func() {
			balance := amountOrZero(logger, "dashboard.balance."+method, func() (decimal.Decimal, error) {
				return s.aggregator.RunningAccountBalance(ctx, storeID, currency, method)
			})
			balances[i] = domain.AccountBalance{Method: method, Balance: balance}
		}
	}
	gather(tasks...)

	cash := decimal.Zero
	for _, b := range balances {
		if b.Method == domain.PaymentMethodCash {
			cash = b.Balance
		}
	}
	return balances, cash
}
