package services

import (
	"context"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregatorSvc exposes the currency-scoped aggregations every report is
// built from. Each call is an independent, idempotent read; a failed call
// returns its zero value's error and the caller decides whether to absorb it.
type AggregatorSvc interface {
	// SalesRevenue sums Sale.totalAmount for sales denominated in currency.
	SalesRevenue(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error)

	// SalesCount counts sales in range for the currency.
	SalesCount(ctx context.Context, storeID, currency string, from, to time.Time) (int64, error)

	// IncomeTotal and ExpenseTotal sum the ledger collections in range.
	IncomeTotal(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error)
	ExpenseTotal(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error)

	// DebtNewAmount sums amountDue of debts created in range.
	DebtNewAmount(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error)

	// DebtOutstanding sums amountDue of unpaid and partially paid debts,
	// unbounded in time.
	DebtOutstanding(ctx context.Context, storeID, currency string) (decimal.Decimal, error)

	// DebtCollected sums totalPaid of debts created in range.
	DebtCollected(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error)

	// PurchaseTotal sums purchase totals in range.
	PurchaseTotal(ctx context.Context, storeID, currency string, from, to time.Time) (decimal.Decimal, error)

	// PayableOutstanding sums remainingAmount of purchases not yet fully
	// paid, unbounded in time.
	PayableOutstanding(ctx context.Context, storeID, currency string) (decimal.Decimal, error)

	// RunningAccountBalance is the all-time net of income minus expense for
	// one payment method. Sales are deliberately excluded: sale revenue is
	// mirrored into the income ledger upstream, and counting it here would
	// double the same cash. The requested report range does not apply;
	// balances are point-in-time, not period deltas.
	RunningAccountBalance(ctx context.Context, storeID, currency, method string) (decimal.Decimal, error)

	// ProductCount counts a store's products without a document scan.
	ProductCount(ctx context.Context, storeID string) (int64, error)

	// StockOverview returns the low-stock count and the lowest-quantity
	// products, ascending, limited to a small page.
	StockOverview(ctx context.Context, storeID string) (*domain.StockOverview, error)

	// StockValue prices current stock at cost in the given currency.
	StockValue(ctx context.Context, storeID, currency string) (decimal.Decimal, error)

	// RecentActivity pages the read-only activity feed, newest first.
	RecentActivity(ctx context.Context, storeID string, limit int) ([]domain.ActivityLogEntry, error)

	// ComparePerformance computes current-vs-previous-period revenue and
	// profit deltas; the previous window is derived from the current one.
	ComparePerformance(ctx context.Context, storeID, currency string, from, to time.Time) (*domain.PerformanceComparison, error)

	// Ping reports whether the record store is reachable.
	Ping(ctx context.Context) error
}
