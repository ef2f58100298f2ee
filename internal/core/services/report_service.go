package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/apperrors"
	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/utils/timeperiod"
	"github.com/shopspring/decimal"
)

const (
	recentPurchasesLimit = 10
	openDebtsLimit       = 10
	topCustomersLimit    = 5
)

// reportService implements the ReportSvc interface. It owns the cache
// decision and the per-tab computation pipelines.
type reportService struct {
	BaseService
	aggregator   portssvc.AggregatorSvc
	trend        portssvc.TrendSvc
	records      portsrepo.RecordQueryRepository
	cache        portsrepo.ReportCacheRepository
	cacheEnabled bool
	storeTZ      *time.Location
}

// NewReportService creates a new report service. cache may be nil when report
// caching is disabled.
func NewReportService(
	aggregator portssvc.AggregatorSvc,
	trend portssvc.TrendSvc,
	records portsrepo.RecordQueryRepository,
	cache portsrepo.ReportCacheRepository,
	cacheEnabled bool,
	storeTZ *time.Location,
) portssvc.ReportSvc {
	if storeTZ == nil {
		storeTZ = time.UTC
	}
	return &reportService{
		aggregator:   aggregator,
		trend:        trend,
		records:      records,
		cache:        cache,
		cacheEnabled: cacheEnabled && cache != nil,
		storeTZ:      storeTZ,
	}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

// GetReport answers one report tab. The pre-computed snapshot is consulted
// only when the tab is cacheable, the requested range is exactly the default
// window and caching is on; any cache miss falls through to the real-time
// pipeline. The sales tab always computes in real time because sellers watch
// it between sales. Both paths redact the tab per the caller's role.
func (s *reportService) GetReport(ctx context.Context, storeID string, view domain.ReportView, currency string, from, to time.Time, role domain.StoreRole) (*domain.TabReport, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("store_id", storeID),
		slog.String("view", string(view)),
		slog.String("currency", currency))

	if s.shouldUseCache(view, from, to) {
		snapshot, err := s.cache.GetSnapshot(ctx, storeID)
		switch {
		case err == nil:
			if slice, ok := snapshot.Slice(string(view), currency); ok {
				logger.Debug("report served from snapshot",
					slog.Time("generated_at", snapshot.GeneratedAt))
				return RedactTabReport(&slice, role), nil
			}
			logger.Debug("snapshot missing view slice, computing in real time")
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Debug("no snapshot for store, computing in real time")
		default:
			logger.Warn("snapshot read failed, computing in real time",
				slog.String("error", err.Error()))
		}
	}

	if err := s.aggregator.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: record store unreachable: %v", apperrors.ErrUpstream, err)
	}

	report, err := s.realtimeTab(ctx, logger, storeID, view, currency, from, to)
	if err != nil {
		return nil, err
	}
	return RedactTabReport(report, role), nil
}

// realtimeTab dispatches the slow path to the per-tab pipeline.
func (s *reportService) realtimeTab(ctx context.Context, logger *slog.Logger, storeID string, view domain.ReportView, currency string, from, to time.Time) (*domain.TabReport, error) {
	switch view {
	case domain.ViewSales:
		return s.salesTab(ctx, logger, storeID, currency, from, to)
	case domain.ViewFinance:
		return s.financeTab(ctx, logger, storeID, currency, from, to)
	case domain.ViewInventory:
		return s.inventoryTab(ctx, logger, storeID, currency)
	case domain.ViewPurchases:
		return s.purchasesTab(ctx, logger, storeID, currency, from, to)
	case domain.ViewDebts:
		return s.debtsTab(ctx, logger, storeID, currency, from, to)
	case domain.ViewCustomers:
		return s.customersTab(ctx, logger, storeID, currency, from, to)
	case domain.ViewHR:
		return s.hrTab(ctx, logger, storeID, currency, from, to)
	default:
		// Custom report builders and anything unrecognized: the client
		// renders its own placeholder off this flag.
		return &domain.TabReport{NotImplemented: true}, nil
	}
}

// shouldUseCache gates the snapshot fast path. Sales is excluded because its
// numbers must reflect the last sale immediately; non-default ranges are
// excluded because the snapshot only covers the default window.
func (s *reportService) shouldUseCache(view domain.ReportView, from, to time.Time) bool {
	if !s.cacheEnabled || view == domain.ViewSales {
		return false
	}
	return timeperiod.IsDefault(from, to, time.Now().In(s.storeTZ))
}

func (s *reportService) salesTab(ctx context.Context, logger *slog.Logger, storeID, currency string, from, to time.Time) (*domain.TabReport, error) {
	var (
		bundle   *domain.SalesData
		revenue  decimal.Decimal
		trendPts []domain.TrendPoint
	)
	gather(
		func() {
			var err error
			bundle, err = s.trend.SalesData(ctx, storeID, currency, from, to)
			if err != nil {
				logger.Warn("sales bundle degraded to empty", slog.String("error", err.Error()))
			}
		},
		func() {
			revenue = amountOrZero(logger, "sales.revenue", func() (decimal.Decimal, error) {
				return s.aggregator.SalesRevenue(ctx, storeID, currency, from, to)
			})
		},
		func() {
			var err error
			trendPts, err = s.trend.SalesTrend(ctx, storeID, currency, from, to)
			if err != nil {
				logger.Warn("sales trend degraded to empty", slog.String("error", err.Error()))
			}
		},
	)
	if bundle == nil {
		bundle = &domain.SalesData{}
	}

	avgSale := decimal.Zero
	if bundle.TotalSalesCount > 0 {
		avgSale = revenue.Div(decimal.NewFromInt(bundle.TotalSalesCount))
	}

	return &domain.TabReport{
		KPIs: []domain.KPI{
			{Title: "Total Revenue", Value: revenue, Format: domain.FormatCurrency},
			{Title: "Sales Count", Value: decimal.NewFromInt(bundle.TotalSalesCount), Format: domain.FormatNumber},
			{Title: "Average Sale", Value: avgSale, Format: domain.FormatCurrency},
		},
		Charts: map[string]any{
			"salesTrend":     trendPts,
			"paymentMethods": bundle.PaymentMethods,
		},
		Tables: map[string]any{
			"topProducts": bundle.TopProducts,
			"recentSales": bundle.RecentSales,
		},
	}, nil
}

func (s *reportService) financeTab(ctx context.Context, logger *slog.Logger, storeID, currency string, from, to time.Time) (*domain.TabReport, error) {
	var (
		incomes, expenses decimal.Decimal
		trendPts          []domain.TrendPoint
		breakdown         []domain.CategoryAmount
		balances          []domain.AccountBalance
	)
	gather(
		func() {
			incomes = amountOrZero(logger, "finance.incomes", func() (decimal.Decimal, error) {
				return s.aggregator.IncomeTotal(ctx, storeID, currency, from, to)
			})
		},
		func() {
			expenses = amountOrZero(logger, "finance.expenses", func() (decimal.Decimal, error) {
				return s.aggregator.ExpenseTotal(ctx, storeID, currency, from, to)
			})
		},
		func() {
			var err error
			trendPts, err = s.trend.IncomeExpenseTrend(ctx, storeID, currency, from, to)
			if err != nil {
				logger.Warn("finance trend degraded to empty", slog.String("error", err.Error()))
			}
		},
		func() {
			var err error
			breakdown, err = s.trend.ExpenseBreakdown(ctx, storeID, currency, from, to)
			if err != nil {
				logger.Warn("expense breakdown degraded to empty", slog.String("error", err.Error()))
			}
		},
		func() {
			methods := domain.PaymentMethodsForCurrency(currency)
			balances = make([]domain.AccountBalance, len(methods))
			tasks := make([]func(), len(methods))
			for i, method := range methods {
				i, method := i, method
				tasks[i] = func() {
					balance := amountOrZero(logger, "finance.balance."+method, func() (decimal.Decimal, error) {
						return s.aggregator.RunningAccountBalance(ctx, storeID, currency, method)
					})
					balances[i] = domain.AccountBalance{Method: method, Balance: balance}
				}
			}
			gather(tasks...)
		},
	)

	netProfit := incomes.Sub(expenses)
	margin := decimal.Zero
	if incomes.GreaterThan(decimal.Zero) {
		margin = netProfit.Div(incomes).Mul(oneHundred)
	}

	return &domain.TabReport{
		KPIs: []domain.KPI{
			{Title: "Total Income", Value: incomes, Format: domain.FormatCurrency},
			{Title: "Total Expenses", Value: expenses, Format: domain.FormatCurrency},
			{Title: "Net Profit", Value: netProfit, Format: domain.FormatCurrency},
			{Title: "Profit Margin", Value: margin, Format: domain.FormatPercent},
		},
		Charts: map[string]any{
			"incomeExpenseTrend": trendPts,
			"expenseBreakdown":   breakdown,
		},
		Tables: map[string]any{
			"accountBalances": balances,
		},
	}, nil
}

func (s *reportService) inventoryTab(ctx context.Context, logger *slog.Logger, storeID, currency string) (*domain.TabReport, error) {
	var (
		productCount int64
		stockValue   decimal.Decimal
		stock        *domain.StockOverview
	)
	gather(
		func() {
			productCount = countOrZero(logger, "inventory.productCount", func() (int64, error) {
				return s.aggregator.ProductCount(ctx, storeID)
			})
		},
		func() {
			stockValue = amountOrZero(logger, "inventory.stockValue", func() (decimal.Decimal, error) {
				return s.aggregator.StockValue(ctx, storeID, currency)
			})
		},
		func() {
			var err error
			stock, err = s.aggregator.StockOverview(ctx, storeID)
			if err != nil {
				logger.Warn("stock overview degraded to empty", slog.String("error", err.Error()))
			}
		},
	)
	if stock == nil {
		stock = &domain.StockOverview{}
	}

	return &domain.TabReport{
		KPIs: []domain.KPI{
			{Title: "Products", Value: decimal.NewFromInt(productCount), Format: domain.FormatNumber},
			{Title: "Stock Value", Value: stockValue, Format: domain.FormatCurrency},
			{Title: "Low Stock Items", Value: decimal.NewFromInt(stock.LowStockCount), Format: domain.FormatNumber},
		},
		Charts: map[string]any{},
		Tables: map[string]any{
			"lowStockProducts": stock.LowStockProducts,
		},
	}, nil
}

func (s *reportService) purchasesTab(ctx context.Context, logger *slog.Logger, storeID, currency string, from, to time.Time) (*domain.TabReport, error) {
	var (
		total, payables decimal.Decimal
		purchases       []domain.Purchase
	)
	gather(
		func() {
			total = amountOrZero(logger, "purchases.total", func() (decimal.Decimal, error) {
				return s.aggregator.PurchaseTotal(ctx, storeID, currency, from, to)
			})
		},
		func() {
			payables = amountOrZero(logger, "purchases.payables", func() (decimal.Decimal, error) {
				return s.aggregator.PayableOutstanding(ctx, storeID, currency)
			})
		},
		func() {
			var err error
			purchases, err = s.records.FindPurchases(ctx, portsrepo.RecordFilter{
				Collection: portsrepo.CollectionPurchases,
				StoreID:    storeID,
				Currency:   currency,
				From:       &from,
				To:         &to,
			})
			if err != nil {
				logger.Warn("purchases list degraded to empty", slog.String("error", err.Error()))
			}
		},
	)
	if len(purchases) > recentPurchasesLimit {
		purchases = purchases[:recentPurchasesLimit]
	}

	return &domain.TabReport{
		KPIs: []domain.KPI{
			{Title: "Total Purchases", Value: total, Format: domain.FormatCurrency},
			{Title: "Purchase Count", Value: decimal.NewFromInt(int64(len(purchases))), Format: domain.FormatNumber},
			{Title: "Outstanding Payables", Value: payables, Format: domain.FormatCurrency},
		},
		Charts: map[string]any{},
		Tables: map[string]any{
			"recentPurchases": purchases,
		},
	}, nil
}

func (s *reportService) debtsTab(ctx context.Context, logger *slog.Logger, storeID, currency string, from, to time.Time) (*domain.TabReport, error) {
	var (
		newDebts, collected, outstanding decimal.Decimal
		open                             []domain.Debt
	)
	gather(
		func() {
			newDebts = amountOrZero(logger, "debts.new", func() (decimal.Decimal, error) {
				return s.aggregator.DebtNewAmount(ctx, storeID, currency, from, to)
			})
		},
		func() {
			collected = amountOrZero(logger, "debts.collected", func() (decimal.Decimal, error) {
				return s.aggregator.DebtCollected(ctx, storeID, currency, from, to)
			})
		},
		func() {
			outstanding = amountOrZero(logger, "debts.outstanding", func() (decimal.Decimal, error) {
				return s.aggregator.DebtOutstanding(ctx, storeID, currency)
			})
		},
		func() {
			var err error
			open, err = s.records.FindDebts(ctx, portsrepo.RecordFilter{
				Collection:    portsrepo.CollectionDebts,
				StoreID:       storeID,
				Currency:      currency,
				ExcludeStatus: domain.DebtStatusPaid,
			})
			if err != nil {
				logger.Warn("open debts list degraded to empty", slog.String("error", err.Error()))
			}
		},
	)
	if len(open) > openDebtsLimit {
		open = open[:openDebtsLimit]
	}

	return &domain.TabReport{
		KPIs: []domain.KPI{
			{Title: "New Debts", Value: newDebts, Format: domain.FormatCurrency},
			{Title: "Collected", Value: collected, Format: domain.FormatCurrency},
			{Title: "Outstanding", Value: outstanding, Format: domain.FormatCurrency},
		},
		Charts: map[string]any{},
		Tables: map[string]any{
			"openDebts": open,
		},
	}, nil
}

// customersTab is derived data: there is no customer collection, so the tab is
// computed from the customer names sales and debts carry.
func (s *reportService) customersTab(ctx context.Context, logger *slog.Logger, storeID, currency string, from, to time.Time) (*domain.TabReport, error) {
	var (
		sales []domain.Sale
		debts []domain.Debt
	)
	gather(
		func() {
			var err error
			sales, err = s.records.FindSales(ctx, portsrepo.RecordFilter{
				Collection: portsrepo.CollectionSales,
				StoreID:    storeID,
				Currency:   currency,
				From:       &from,
				To:         &to,
			})
			if err != nil {
				logger.Warn("customer sales degraded to empty", slog.String("error", err.Error()))
			}
		},
		func() {
			var err error
			debts, err = s.records.FindDebts(ctx, portsrepo.RecordFilter{
				Collection:    portsrepo.CollectionDebts,
				StoreID:       storeID,
				Currency:      currency,
				ExcludeStatus: domain.DebtStatusPaid,
			})
			if err != nil {
				logger.Warn("customer debts degraded to empty", slog.String("error", err.Error()))
			}
		},
	)

	revenueByCustomer := map[string]decimal.Decimal{}
	for _, sale := range sales {
		name := strings.TrimSpace(sale.CustomerName)
		if name == "" {
			continue
		}
		revenueByCustomer[name] = revenueByCustomer[name].Add(sale.TotalAmount)
	}

	creditCustomers := map[string]struct{}{}
	for _, d := range debts {
		name := strings.TrimSpace(d.CustomerName)
		if name == "" {
			continue
		}
		creditCustomers[name] = struct{}{}
	}

	top := make([]domain.CategoryAmount, 0, len(revenueByCustomer))
	for name, total := range revenueByCustomer {
		top = append(top, domain.CategoryAmount{Name: name, Value: total})
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Value.GreaterThan(top[j].Value) })
	if len(top) > topCustomersLimit {
		top = top[:topCustomersLimit]
	}

	return &domain.TabReport{
		KPIs: []domain.KPI{
			{Title: "Active Customers", Value: decimal.NewFromInt(int64(len(revenueByCustomer))), Format: domain.FormatNumber},
			{Title: "Customers With Open Debt", Value: decimal.NewFromInt(int64(len(creditCustomers))), Format: domain.FormatNumber},
		},
		Charts: map[string]any{},
		Tables: map[string]any{
			"topCustomers": top,
		},
	}, nil
}

// salaryCategory marks the expense entries the payroll view is built from.
const salaryCategory = "salary"

// hrTab is a payroll view over salary-category expense entries: who was paid
// and how much over the range.
func (s *reportService) hrTab(ctx context.Context, logger *slog.Logger, storeID, currency string, from, to time.Time) (*domain.TabReport, error) {
	expenses, err := s.records.FindLedger(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionExpenses,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		logger.Warn("payroll expenses degraded to empty", slog.String("error", err.Error()))
	}

	totalPayroll := decimal.Zero
	byUser := map[string]decimal.Decimal{}
	for _, e := range expenses {
		if !strings.EqualFold(e.Category, salaryCategory) {
			continue
		}
		totalPayroll = totalPayroll.Add(e.Amount)
		name := e.UserName
		if name == "" {
			name = "Unassigned"
		}
		byUser[name] = byUser[name].Add(e.Amount)
	}

	payroll := make([]domain.CategoryAmount, 0, len(byUser))
	for name, amount := range byUser {
		payroll = append(payroll, domain.CategoryAmount{Name: name, Value: amount})
	}
	sort.Slice(payroll, func(i, j int) bool { return payroll[i].Value.GreaterThan(payroll[j].Value) })

	return &domain.TabReport{
		KPIs: []domain.KPI{
			{Title: "Total Payroll", Value: totalPayroll, Format: domain.FormatCurrency},
			{Title: "Payees", Value: decimal.NewFromInt(int64(len(byUser))), Format: domain.FormatNumber},
		},
		Charts: map[string]any{},
		Tables: map[string]any{
			"payrollByUser": payroll,
		},
	}, nil
}
