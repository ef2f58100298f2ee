package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	"github.com/dukaan-apps/duka_backend/internal/utils/timeperiod"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComparePerformance computes current-vs-previous-period revenue and profit
// deltas. The previous window is the immediately preceding window of equal
// day-count; both windows' revenue and expense sums run concurrently. A
// failing sub-query degrades to zero inside this call.
func (s *aggregatorService) ComparePerformance(ctx context.Context, storeID, currency string, from, to time.Time) (*domain.PerformanceComparison, error) {
	prevFrom, prevTo := timeperiod.Previous(from, to)
	logger := s.GetLogger(ctx).With(slog.String("store_id", storeID), slog.String("currency", currency))

	var curRevenue, curExpense, prevRevenue, prevExpense decimal.Decimal
	gather(
		func() {
			curRevenue = amountOrZero(logger, "compare.currentRevenue", func() (decimal.Decimal, error) {
				return s.SalesRevenue(ctx, storeID, currency, from, to)
			})
		},
		func() {
			curExpense = amountOrZero(logger, "compare.currentExpense", func() (decimal.Decimal, error) {
				return s.ExpenseTotal(ctx, storeID, currency, from, to)
			})
		},
		func() {
			prevRevenue = amountOrZero(logger, "compare.previousRevenue", func() (decimal.Decimal, error) {
				return s.SalesRevenue(ctx, storeID, currency, prevFrom, prevTo)
			})
		},
		func() {
			prevExpense = amountOrZero(logger, "compare.previousExpense", func() (decimal.Decimal, error) {
				return s.ExpenseTotal(ctx, storeID, currency, prevFrom, prevTo)
			})
		},
	)

	curProfit := curRevenue.Sub(curExpense)
	prevProfit := prevRevenue.Sub(prevExpense)

	return &domain.PerformanceComparison{
		CurrentRevenue:   curRevenue,
		PreviousRevenue:  prevRevenue,
		RevenueChangePct: percentChange(curRevenue, prevRevenue),
		CurrentProfit:    curProfit,
		PreviousProfit:   prevProfit,
		ProfitChangePct:  percentChange(curProfit, prevProfit),
		CurrentExpense:   curExpense,
		PreviousExpense:  prevExpense,
	}, nil
}

// percentChange follows the dashboard convention for empty baselines:
// growth from zero is 100%, zero to zero is 0%.
func percentChange(cur, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if cur.GreaterThan(decimal.Zero) {
			return oneHundred
		}
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(oneHundred)
}
