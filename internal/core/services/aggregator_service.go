package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// lowStockPageSize bounds the low-stock preview list on the dashboard.
const lowStockPageSize = 5

// aggregatorService implements the AggregatorSvc interface on top of the
// record query repository.
type aggregatorService struct {
	BaseService
	records portsrepo.RecordQueryRepository
}

// NewAggregatorService creates a new aggregator service.
func NewAggregatorService(records portsrepo.RecordQueryRepository) portssvc.AggregatorSvc {
	return &aggregatorService{records: records}
}

var _ portssvc.AggregatorSvc = (*aggregatorService)(nil)

// SalesRevenue sums sale totals for sales denominated in the given currency.
// Sales carry their currency in invoiceCurrency, unlike the ledger
// collections.
func (s *aggregatorService) SalesRevenue(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	return s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionSales,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	}, portsrepo.FieldTotalAmount)
}

// SalesCount counts in-range sales for the currency.
func (s *aggregatorService) SalesCount(ctx context.Context, storeID, currency string, from, to time.Time) (int64, error) {
	return s.records.CountRecords(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionSales,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	})
}

// IncomeTotal sums income ledger entries in range.
func (s *aggregatorService) IncomeTotal(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	return s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionIncomes,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	}, portsrepo.FieldAmount)
}

// ExpenseTotal sums expense ledger entries in range.
func (s *aggregatorService) ExpenseTotal(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	return s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionExpenses,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	}, portsrepo.FieldAmount)
}

// DebtNewAmount sums the due amounts of debts created in range.
func (s *aggregatorService) DebtNewAmount(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	return s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionDebts,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	}, portsrepo.FieldAmountDue)
}

// DebtOutstanding sums due amounts of debts that are not fully paid,
// regardless of when they were created.
func (s *aggregatorService) DebtOutstanding(ctx context.Context, storeID, currency string) (decimal.Decimal, error) {
	return s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection:    portsrepo.CollectionDebts,
		StoreID:       storeID,
		Currency:      currency,
		ExcludeStatus: domain.DebtStatusPaid,
	}, portsrepo.FieldAmountDue)
}

// DebtCollected sums what customers have paid against debts created in range.
func (s *aggregatorService) DebtCollected(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	return s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionDebts,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	}, portsrepo.FieldTotalPaid)
}

// PurchaseTotal sums purchase totals in range.
func (s *aggregatorService) PurchaseTotal(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error) {
	return s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionPurchases,
		StoreID:    storeID,
		Currency:   currency,
		From:       &from,
		To:         &to,
	}, portsrepo.FieldTotalAmount)
}

// PayableOutstanding sums what the store still owes suppliers.
func (s *aggregatorService) PayableOutstanding(ctx context.Context, storeID, currency string) (decimal.Decimal, error) {
	return s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection:    portsrepo.CollectionPurchases,
		StoreID:       storeID,
		Currency:      currency,
		ExcludeStatus: domain.DebtStatusPaid,
	}, portsrepo.FieldRemainingAmount)
}

// RunningAccountBalance computes the all-time net of income minus expense for
// one payment method. Sale records are excluded on purpose: the checkout
// subsystem mirrors sale revenue into the income ledger, so reading sales here
// would count the same cash twice. The balance also ignores any requested
// report range: it is a point-in-time figure, not a period delta.
func (s *aggregatorService) RunningAccountBalance(ctx context.Context, storeID, currency, method string) (decimal.Decimal, error) {
	income, err := s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionIncomes,
		StoreID:    storeID,
		Currency:   currency,
		Method:     method,
	}, portsrepo.FieldAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing incomes for balance: %w", err)
	}

	expense, err := s.records.SumField(ctx, portsrepo.RecordFilter{
		Collection: portsrepo.CollectionExpenses,
		StoreID:    storeID,
		Currency:   currency,
		Method:     method,
	}, portsrepo.FieldAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses for balance: %w", err)
	}

	return income.Sub(expense), nil
}

// ProductCount counts the store's products server-side.
func (s *aggregatorService) ProductCount(ctx context.Context, storeID string) (int64, error) {
	return s.records.CountProducts(ctx, storeID)
}

// StockOverview returns the low-stock count and the lowest-quantity products.
func (s *aggregatorService) StockOverview(ctx context.Context, storeID string) (*domain.StockOverview, error) {
	products, count, err := s.records.LowStockProducts(ctx, storeID, lowStockPageSize)
	if err != nil {
		return nil, fmt.Errorf("loading low stock products: %w", err)
	}
	return &domain.StockOverview{
		LowStockCount:    count,
		LowStockProducts: products,
	}, nil
}

// StockValue prices the store's current stock at cost in the given currency.
// Products without a cost price in that currency contribute nothing.
func (s *aggregatorService) StockValue(ctx context.Context, storeID, currency string) (decimal.Decimal, error) {
	products, err := s.records.FindProducts(ctx, storeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("loading products for stock value: %w", err)
	}

	total := decimal.Zero
	for _, p := range products {
		cost, ok := p.CostPrices[currency]
		if !ok {
			continue
		}
		total = total.Add(cost.Mul(decimal.NewFromInt(p.Quantity)))
	}
	return total, nil
}

// RecentActivity pages the activity feed, newest first.
func (s *aggregatorService) RecentActivity(ctx context.Context, storeID string, limit int) ([]domain.ActivityLogEntry, error) {
	return s.records.RecentActivity(ctx, storeID, limit)
}

// Ping reports whether the record store is reachable.
func (s *aggregatorService) Ping(ctx context.Context) error {
	return s.records.Ping(ctx)
}
