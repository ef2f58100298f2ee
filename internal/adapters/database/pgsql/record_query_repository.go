package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// collectionMeta maps a logical collection onto its table layout. Sales keep
// their currency in invoice_currency; the ledger-style collections use a plain
// currency column. Purchases are dated by purchase_date, everything else by
// created_at.
type collectionMeta struct {
	table       string
	currencyCol string
	timeCol     string
	methodCol   string
	statusCol   string
	// fields whitelists the summable field names and their columns.
	fields map[string]string
}

var collections = map[portsrepo.Collection]collectionMeta{
	portsrepo.CollectionSales: {
		table:       "sales",
		currencyCol: "invoice_currency",
		timeCol:     "created_at",
		statusCol:   "payment_status",
		fields: map[string]string{
			portsrepo.FieldTotalAmount: "total_amount",
		},
	},
	portsrepo.CollectionIncomes: {
		table:       "incomes",
		currencyCol: "currency",
		timeCol:     "created_at",
		methodCol:   "payment_method",
		fields: map[string]string{
			portsrepo.FieldAmount: "amount",
		},
	},
	portsrepo.CollectionExpenses: {
		table:       "expenses",
		currencyCol: "currency",
		timeCol:     "created_at",
		methodCol:   "payment_method",
		fields: map[string]string{
			portsrepo.FieldAmount: "amount",
		},
	},
	portsrepo.CollectionDebts: {
		table:       "debts",
		currencyCol: "currency",
		timeCol:     "created_at",
		statusCol:   "status",
		fields: map[string]string{
			portsrepo.FieldAmountDue: "amount_due",
			portsrepo.FieldTotalPaid: "total_paid",
		},
	},
	portsrepo.CollectionPurchases: {
		table:       "purchases",
		currencyCol: "currency",
		timeCol:     "purchase_date",
		statusCol:   "status",
		fields: map[string]string{
			portsrepo.FieldTotalAmount:     "total_amount",
			portsrepo.FieldRemainingAmount: "remaining_amount",
		},
	},
}

// recordQueryRepository implements the RecordQueryRepository interface.
type recordQueryRepository struct {
	BaseRepository
}

func newRecordQueryRepository(db *pgxpool.Pool) portsrepo.RecordQueryRepository {
	return &recordQueryRepository{BaseRepository: BaseRepository{Pool: db}}
}

// buildWhere renders the filter's conditions with positional placeholders.
// Only whitelisted columns from the collection metadata ever reach the SQL
// text; all values travel as parameters.
func buildWhere(filter portsrepo.RecordFilter, meta collectionMeta) (string, []any, error) {
	conds := []string{"store_id = $1"}
	args := []any{filter.StoreID}

	next := func() int { return len(args) + 1 }

	if filter.Currency != "" {
		conds = append(conds, fmt.Sprintf("%s = $%d", meta.currencyCol, next()))
		args = append(args, filter.Currency)
	}
	if filter.Method != "" {
		if meta.methodCol == "" {
			return "", nil, fmt.Errorf("collection %s has no payment method column", filter.Collection)
		}
		conds = append(conds, fmt.Sprintf("%s = $%d", meta.methodCol, next()))
		args = append(args, filter.Method)
	}
	if filter.ExcludeStatus != "" {
		if meta.statusCol == "" {
			return "", nil, fmt.Errorf("collection %s has no status column", filter.Collection)
		}
		conds = append(conds, fmt.Sprintf("%s <> $%d", meta.statusCol, next()))
		args = append(args, filter.ExcludeStatus)
	}
	if filter.From != nil {
		conds = append(conds, fmt.Sprintf("%s >= $%d", meta.timeCol, next()))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conds = append(conds, fmt.Sprintf("%s <= $%d", meta.timeCol, next()))
		args = append(args, *filter.To)
	}

	return strings.Join(conds, " AND "), args, nil
}

func metaFor(filter portsrepo.RecordFilter) (collectionMeta, error) {
	meta, ok := collections[filter.Collection]
	if !ok {
		return collectionMeta{}, fmt.Errorf("unknown collection %q", filter.Collection)
	}
	return meta, nil
}

// SumField sums one whitelisted numeric column over matching rows. COALESCE
// keeps an empty match set at zero instead of NULL.
func (r *recordQueryRepository) SumField(ctx context.Context, filter portsrepo.RecordFilter, field string) (decimal.Decimal, error) {
	meta, err := metaFor(filter)
	if err != nil {
		return decimal.Zero, err
	}
	column, ok := meta.fields[field]
	if !ok {
		return decimal.Zero, fmt.Errorf("field %q is not summable on %s", field, filter.Collection)
	}
	where, args, err := buildWhere(filter, meta)
	if err != nil {
		return decimal.Zero, err
	}

	query := fmt.Sprintf("SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s", column, meta.table, where)

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("error summing %s.%s: %w", meta.table, column, err)
	}
	return sum, nil
}

// CountRecords counts matching rows.
func (r *recordQueryRepository) CountRecords(ctx context.Context, filter portsrepo.RecordFilter) (int64, error) {
	meta, err := metaFor(filter)
	if err != nil {
		return 0, err
	}
	where, args, err := buildWhere(filter, meta)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", meta.table, where)

	var count int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", meta.table, err)
	}
	return count, nil
}

// FindSales loads matching sales newest first, including their embedded item
// and payment line documents.
func (r *recordQueryRepository) FindSales(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.Sale, error) {
	meta, err := metaFor(filter)
	if err != nil {
		return nil, err
	}
	where, args, err := buildWhere(filter, meta)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT sale_id, store_id, invoice_currency, total_amount, customer_name,
			payment_status, created_at, items, payment_lines
		FROM sales WHERE %s ORDER BY created_at DESC`, where)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var sale domain.Sale
		var itemsRaw, linesRaw []byte
		if err := rows.Scan(
			&sale.SaleID,
			&sale.StoreID,
			&sale.InvoiceCurrency,
			&sale.TotalAmount,
			&sale.CustomerName,
			&sale.PaymentStatus,
			&sale.CreatedAt,
			&itemsRaw,
			&linesRaw,
		); err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		if len(itemsRaw) > 0 {
			if err := json.Unmarshal(itemsRaw, &sale.Items); err != nil {
				return nil, fmt.Errorf("error decoding sale items: %w", err)
			}
		}
		if len(linesRaw) > 0 {
			if err := json.Unmarshal(linesRaw, &sale.PaymentLines); err != nil {
				return nil, fmt.Errorf("error decoding sale payment lines: %w", err)
			}
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}
	return sales, nil
}

// FindLedger loads matching income or expense entries depending on the
// filter's collection.
func (r *recordQueryRepository) FindLedger(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.LedgerEntry, error) {
	if filter.Collection != portsrepo.CollectionIncomes && filter.Collection != portsrepo.CollectionExpenses {
		return nil, fmt.Errorf("collection %q is not a ledger collection", filter.Collection)
	}
	meta, err := metaFor(filter)
	if err != nil {
		return nil, err
	}
	where, args, err := buildWhere(filter, meta)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT entry_id, store_id, currency, amount, category, payment_method,
			user_name, created_at
		FROM %s WHERE %s ORDER BY created_at DESC`, meta.table, where)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", meta.table, err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(
			&e.EntryID,
			&e.StoreID,
			&e.Currency,
			&e.Amount,
			&e.Category,
			&e.PaymentMethod,
			&e.UserName,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning %s entry: %w", meta.table, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", meta.table, err)
	}
	return entries, nil
}

// FindDebts loads matching debts newest first.
func (r *recordQueryRepository) FindDebts(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.Debt, error) {
	meta, err := metaFor(filter)
	if err != nil {
		return nil, err
	}
	where, args, err := buildWhere(filter, meta)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT debt_id, store_id, currency, amount_due, total_paid, status,
			customer_name, created_at
		FROM debts WHERE %s ORDER BY created_at DESC`, where)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying debts: %w", err)
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		var d domain.Debt
		if err := rows.Scan(
			&d.DebtID,
			&d.StoreID,
			&d.Currency,
			&d.AmountDue,
			&d.TotalPaid,
			&d.Status,
			&d.CustomerName,
			&d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning debt: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debts: %w", err)
	}
	return debts, nil
}

// FindPurchases loads matching purchases newest first.
func (r *recordQueryRepository) FindPurchases(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.Purchase, error) {
	meta, err := metaFor(filter)
	if err != nil {
		return nil, err
	}
	where, args, err := buildWhere(filter, meta)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT purchase_id, store_id, currency, total_amount, remaining_amount,
			status, supplier_name, purchase_date
		FROM purchases WHERE %s ORDER BY purchase_date DESC`, where)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying purchases: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(
			&p.PurchaseID,
			&p.StoreID,
			&p.Currency,
			&p.TotalAmount,
			&p.RemainingAmount,
			&p.Status,
			&p.SupplierName,
			&p.PurchaseDate,
		); err != nil {
			return nil, fmt.Errorf("error scanning purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchases: %w", err)
	}
	return purchases, nil
}

// FindProducts loads every product of a store.
func (r *recordQueryRepository) FindProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	query := `
		SELECT product_id, store_id, name, quantity, cost_prices, sale_prices,
			category, low_stock_threshold
		FROM products WHERE store_id = $1`

	rows, err := r.Pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// LowStockProducts counts products at or under their threshold and returns
// the `limit` lowest-quantity ones.
func (r *recordQueryRepository) LowStockProducts(ctx context.Context, storeID string, limit int) ([]domain.Product, int64, error) {
	countQuery := `
		SELECT COUNT(*) FROM products
		WHERE store_id = $1 AND quantity <= low_stock_threshold`

	var count int64
	if err := r.Pool.QueryRow(ctx, countQuery, storeID).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("error counting low stock products: %w", err)
	}

	listQuery := `
		SELECT product_id, store_id, name, quantity, cost_prices, sale_prices,
			category, low_stock_threshold
		FROM products
		WHERE store_id = $1 AND quantity <= low_stock_threshold
		ORDER BY quantity ASC
		LIMIT $2`

	rows, err := r.Pool.Query(ctx, listQuery, storeID, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying low stock products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, count, nil
}

// CountProducts counts a store's products.
func (r *recordQueryRepository) CountProducts(ctx context.Context, storeID string) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM products WHERE store_id = $1", storeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting products: %w", err)
	}
	return count, nil
}

// RecentActivity pages the activity feed newest first.
func (r *recordQueryRepository) RecentActivity(ctx context.Context, storeID string, limit int) ([]domain.ActivityLogEntry, error) {
	query := `
		SELECT entry_id, store_id, description, user_name, occurred_at
		FROM activity_log WHERE store_id = $1
		ORDER BY occurred_at DESC LIMIT $2`

	rows, err := r.Pool.Query(ctx, query, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying activity log: %w", err)
	}
	defer rows.Close()

	var entries []domain.ActivityLogEntry
	for rows.Next() {
		var e domain.ActivityLogEntry
		if err := rows.Scan(&e.EntryID, &e.StoreID, &e.Description, &e.UserName, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("error scanning activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity log: %w", err)
	}
	return entries, nil
}

// Ping reports whether the database answers at all.
func (r *recordQueryRepository) Ping(ctx context.Context) error {
	return r.Pool.Ping(ctx)
}

// scanRows is the subset of pgx.Rows both product queries need.
type scanRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanProducts(rows scanRows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var costRaw, saleRaw []byte
		if err := rows.Scan(
			&p.ProductID,
			&p.StoreID,
			&p.Name,
			&p.Quantity,
			&costRaw,
			&saleRaw,
			&p.Category,
			&p.LowStockThreshold,
		); err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		if len(costRaw) > 0 {
			if err := json.Unmarshal(costRaw, &p.CostPrices); err != nil {
				return nil, fmt.Errorf("error decoding cost prices: %w", err)
			}
		}
		if len(saleRaw) > 0 {
			if err := json.Unmarshal(saleRaw, &p.SalePrices); err != nil {
				return nil, fmt.Errorf("error decoding sale prices: %w", err)
			}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}
