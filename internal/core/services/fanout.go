package services

import (
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
)

// gather runs every task concurrently and returns once all of them finish.
// It never short-circuits: a failing task is the task's own problem, the join
// always waits for the full set. Each task writes to its own slot captured by
// closure, so no locking is needed; the WaitGroup provides the happens-before
// edge for the joined reads.
func gather(tasks ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(run func()) {
			defer wg.Done()
			run()
		}(task)
	}
	wg.Wait()
}

// amountOrZero unwraps an aggregation result to its value, degrading to zero
// on failure. The failure is logged once here; a partial report beats a
// failed one.
func amountOrZero(logger *slog.Logger, name string, fn func() (decimal.Decimal, error)) decimal.Decimal {
	v, err := fn()
	if err != nil {
		logger.Warn("aggregation degraded to zero",
			slog.String("aggregate", name),
			slog.String("error", err.Error()))
		return decimal.Zero
	}
	return v
}

// countOrZero is amountOrZero for count aggregations.
func countOrZero(logger *slog.Logger, name string, fn func() (int64, error)) int64 {
	v, err := fn()
	if err != nil {
		logger.Warn("aggregation degraded to zero",
			slog.String("aggregate", name),
			slog.String("error", err.Error()))
		return 0
	}
	return v
}
