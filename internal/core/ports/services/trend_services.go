package services

import (
	"context"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
)

// TrendSvc builds day-bucketed time series and category breakdowns from raw
// record amounts.
type TrendSvc interface {
	// IncomeExpenseTrend emits one point per calendar day of [from, to],
	// including zero points for quiet days, so charts get a dense axis.
	IncomeExpenseTrend(ctx context.Context, storeID, currency string, from, to time.Time) ([]domain.TrendPoint, error)

	// SalesTrend is the same dense series over sale totals.
	SalesTrend(ctx context.Context, storeID, currency string, from, to time.Time) ([]domain.TrendPoint, error)

	// ExpenseBreakdown groups expense amounts by category.
	ExpenseBreakdown(ctx context.Context, storeID, currency string, from, to time.Time) ([]domain.CategoryAmount, error)

	// SalesData derives the recent-sales preview, total count, top products
	// and payment-method breakdown from a single pass over in-range sales.
	SalesData(ctx context.Context, storeID, currency string, from, to time.Time) (*domain.SalesData, error)
}
