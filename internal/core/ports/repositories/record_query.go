package repositories

import (
	"context"
	"time"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Collection names one queryable record collection.
type Collection string

const (
	CollectionSales     Collection = "sales"
	CollectionIncomes   Collection = "incomes"
	CollectionExpenses  Collection = "expenses"
	CollectionDebts     Collection = "debts"
	CollectionPurchases Collection = "purchases"
)

// RecordFilter is a declarative filter specification for scoped range queries.
// Aggregators describe WHAT they want matched; the storage adapter decides how
// to express it, so no query-builder syntax leaks into aggregation logic.
//
// StoreID is mandatory. Currency matches the collection's currency field
// (invoice_currency for sales, currency elsewhere). Method and ExcludeStatus
// are optional equality / inequality filters. From and To bound the
// collection's timestamp field inclusively; a nil bound is open.
type RecordFilter struct {
	Collection    Collection
	StoreID       string
	Currency      string
	Method        string
	ExcludeStatus string
	From          *time.Time
	To            *time.Time
}

// Summable field names accepted by SumField. Each collection supports a
// subset; the adapter rejects anything else.
const (
	FieldTotalAmount     = "totalAmount"
	FieldAmount          = "amount"
	FieldAmountDue       = "amountDue"
	FieldTotalPaid       = "totalPaid"
	FieldRemainingAmount = "remainingAmount"
)

// RecordQueryRepository is the query surface this engine requires of the
// record store: equality + range filtering, ordering, limiting and server-side
// summing/counting. It is read-only by construction.
type RecordQueryRepository interface {
	// SumField reduces matching records by summing the named numeric field.
	SumField(ctx context.Context, filter RecordFilter, field string) (decimal.Decimal, error)

	// CountRecords counts matching records without scanning documents.
	CountRecords(ctx context.Context, filter RecordFilter) (int64, error)

	// FindSales returns matching sales ordered by creation time descending.
	FindSales(ctx context.Context, filter RecordFilter) ([]domain.Sale, error)

	// FindLedger returns matching income or expense entries depending on
	// filter.Collection.
	FindLedger(ctx context.Context, filter RecordFilter) ([]domain.LedgerEntry, error)

	// FindDebts returns matching debt records.
	FindDebts(ctx context.Context, filter RecordFilter) ([]domain.Debt, error)

	// FindPurchases returns matching purchase records.
	FindPurchases(ctx context.Context, filter RecordFilter) ([]domain.Purchase, error)

	// FindProducts returns every product of a store.
	FindProducts(ctx context.Context, storeID string) ([]domain.Product, error)

	// LowStockProducts returns the count of products at or under their
	// low-stock threshold plus the `limit` lowest-quantity ones, ascending.
	LowStockProducts(ctx context.Context, storeID string, limit int) ([]domain.Product, int64, error)

	// CountProducts counts a store's products.
	CountProducts(ctx context.Context, storeID string) (int64, error)

	// RecentActivity returns the newest activity feed entries, newest first.
	RecentActivity(ctx context.Context, storeID string, limit int) ([]domain.ActivityLogEntry, error)

	// Ping reports whether the record store is reachable at all.
	Ping(ctx context.Context) error
}
