package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/dukaan-apps/duka_backend/internal/utils/timeperiod"
	"github.com/shopspring/decimal"
)

const (
	recentSalesLimit = 5
	topProductsLimit = 5
)

// dayKeyFormat buckets timestamps by the store's calendar day.
const dayKeyFormat = "2006-01-02"

// trendService implements the TrendSvc interface.
type trendService struct {
	BaseService
	records portsrepo.RecordQueryRepository
}

// NewTrendService creates a new trend service.
func NewTrendService(records portsrepo.RecordQueryRepository) portssvc.TrendSvc {
	return &trendService{records: records}
}

var _ portssvc.TrendSvc = (*trendService)(nil)

// IncomeExpenseTrend loads in-range ledger entries and buckets them per
// calendar day. The output is dense: one point per day of [from, to], with
// zero points for days that saw no activity, so charts render a continuous
// axis.
func (s *trendService) IncomeExpenseTrend(ctx context.Context, storeID, currency string, from, to time.Time) ([]domain.TrendPoint, error) {
	incomeFilter := portsrepo.RecordFilter{
		Collection: portsrepo.CollectionIncomes,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	}
	incomes, err := s.records.FindLedger(ctx, incomeFilter)
	if err != nil {
		return nil, fmt.Errorf("loading incomes for trend: %w", err)
	}

	expenseFilter := incomeFilter
	expenseFilter.Collection = portsrepo.CollectionExpenses
	expenses, err := s.records.FindLedger(ctx, expenseFilter)
	if err != nil {
		return nil, fmt.Errorf("loading expenses for trend: %w", err)
	}

	incomeByDay := map[string]decimal.Decimal{}
	for _, e := range incomes {
		key := e.CreatedAt.In(from.Location()).Format(dayKeyFormat)
		incomeByDay[key] = incomeByDay[key].Add(e.Amount)
	}
	expenseByDay := map[string]decimal.Decimal{}
	for _, e := range expenses {
		key := e.CreatedAt.In(from.Location()).Format(dayKeyFormat)
		expenseByDay[key] = expenseByDay[key].Add(e.Amount)
	}

	return denseSeries(from, to, func(key string) (decimal.Decimal, decimal.Decimal) {
		return incomeByDay[key], expenseByDay[key]
	}), nil
}

// SalesTrend is the dense daily series of sale totals. Sale amounts land in
// the Income column of each point; Expense stays zero.
func (s *trendService) SalesTrend(ctx context.Context, storeID, currency string, from, to time.Time) ([]domain.TrendPoint, error) {
	sales, err := s.records.FindSales(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionSales,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return nil, fmt.Errorf("loading sales for trend: %w", err)
	}

	totalByDay := map[string]decimal.Decimal{}
	for _, sale := range sales {
		key := sale.CreatedAt.In(from.Location()).Format(dayKeyFormat)
		totalByDay[key] = totalByDay[key].Add(sale.TotalAmount)
	}

	return denseSeries(from, to, func(key string) (decimal.Decimal, decimal.Decimal) {
		return totalByDay[key], decimal.Zero
	}), nil
}

// denseSeries walks every calendar day of [from, to] and emits one point per
// day via the lookup.
func denseSeries(from, to time.Time, lookup func(key string) (income, expense decimal.Decimal)) []domain.TrendPoint {
	days := timeperiod.DaysBetween(from, to) + 1
	points := make([]domain.TrendPoint, 0, days)
	day := timeperiod.DayStart(from)
	for i := 0; i < days; i++ {
		key := day.Format(dayKeyFormat)
		income, expense := lookup(key)
		points = append(points, domain.TrendPoint{
			Date:    key,
			Income:  income,
			Expense: expense,
		})
		day = day.AddDate(0, 0, 1)
	}
	return points
}

// ExpenseBreakdown groups in-range expense amounts by category.
func (s *trendService) ExpenseBreakdown(ctx context.Context, storeID, currency string, from, to time.Time) ([]domain.CategoryAmount, error) {
	expenses, err := s.records.FindLedger(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionExpenses,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return nil, fmt.Errorf("loading expenses for breakdown: %w", err)
	}

	byCategory := map[string]decimal.Decimal{}
	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = "Uncategorized"
		}
		byCategory[category] = byCategory[category].Add(e.Amount)
	}

	breakdown := make([]domain.CategoryAmount, 0, len(byCategory))
	for name, value := range byCategory {
		breakdown = append(breakdown, domain.CategoryAmount{Name: name, Value: value})
	}
	return breakdown, nil
}

// SalesData derives the whole sales bundle from one pass over in-range sales:
// the five most recent sales, the total count, per-product units and revenue
// (top five by revenue) and the per-payment-method sums from payment lines.
func (s *trendService) SalesData(ctx context.Context, storeID, currency string, from, to time.Time) (*domain.SalesData, error) {
	sales, err := s.records.FindSales(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionSales,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return nil, fmt.Errorf("loading sales: %w", err)
	}

	byProduct := map[string]*domain.ProductSales{}
	byMethod := map[string]decimal.Decimal{}

	for _, sale := range sales {
		for _, item := range sale.Items {
			agg, ok := byProduct[item.ProductID]
			if !ok {
				agg = &domain.ProductSales{ProductID: item.ProductID, Name: item.ProductName}
				byProduct[item.ProductID] = agg
			}
			agg.UnitsSold += item.Quantity
			agg.Revenue = agg.Revenue.Add(item.PricePerUnit.Mul(decimal.NewFromInt(item.Quantity)))
		}
		for _, line := range sale.PaymentLines {
			method := normalizeMethod(line.Method)
			byMethod[method] = byMethod[method].Add(line.Value)
		}
	}

	topProducts := make([]domain.ProductSales, 0, len(byProduct))
	for _, agg := range byProduct {
		topProducts = append(topProducts, *agg)
	}
	sort.Slice(topProducts, func(i, j int) bool {
		return topProducts[i].Revenue.GreaterThan(topProducts[j].Revenue)
	})
	if len(topProducts) > topProductsLimit {
		topProducts = topProducts[:topProductsLimit]
	}

	methods := make([]domain.MethodAmount, 0, len(byMethod))
	for method, amount := range byMethod {
		methods = append(methods, domain.MethodAmount{Method: method, Amount: amount})
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].Method < methods[j].Method })

	// FindSales returns newest first, so the preview is a prefix.
	recent := sales
	if len(recent) > recentSalesLimit {
		recent = recent[:recentSalesLimit]
	}

	return &domain.SalesData{
		RecentSales:     recent,
		TotalSalesCount: int64(len(sales)),
		TopProducts:     topProducts,
		PaymentMethods:  methods,
	}, nil
}

// normalizeMethod prepares a raw payment method name for display grouping:
// uppercased, underscores become spaces.
func normalizeMethod(method string) string {
	return strings.ToUpper(strings.ReplaceAll(method, "_", " "))
}
