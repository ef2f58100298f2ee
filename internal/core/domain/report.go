package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportView names one tab of the multi-tab reports endpoint.
type ReportView string

const (
	ViewSales     ReportView = "sales"
	ViewFinance   ReportView = "finance"
	ViewInventory ReportView = "inventory"
	ViewPurchases ReportView = "purchases"
	ViewDebts     ReportView = "debts"
	ViewCustomers ReportView = "customers"
	ViewHR        ReportView = "hr"
	ViewCustom    ReportView = "custom"
)

// KPI value formats understood by the presentation layer.
const (
	FormatCurrency = "currency"
	FormatNumber   = "number"
	FormatPercent  = "percent"
)

// KPI is a single named scalar metric with a display format.
type KPI struct {
	Title  string          `json:"title"`
	Value  decimal.Decimal `json:"value"`
	Format string          `json:"format"`
}

// TabReport is the result of one report tab: named KPIs plus chart and table
// payloads keyed by name. An unrecognized tab yields NotImplemented instead of
// an error.
type TabReport struct {
	KPIs           []KPI          `json:"kpis"`
	Charts         map[string]any `json:"charts"`
	Tables         map[string]any `json:"tables"`
	NotImplemented bool           `json:"notImplemented,omitempty"`
}

// TrendPoint is one calendar day of the income/expense trend. The trend is a
// dense series: every day of the requested range gets a point, zero or not.
type TrendPoint struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryAmount is one slice of a category breakdown.
type CategoryAmount struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ProductSales aggregates one product's movement over the requested range.
type ProductSales struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitsSold int64           `json:"unitsSold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// MethodAmount is one payment method's share of collected sale payments,
// keyed by display-normalized method name.
type MethodAmount struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// SalesData is the bundle produced by a single pass over in-range sales.
type SalesData struct {
	RecentSales     []Sale         `json:"recentSales"`
	TotalSalesCount int64          `json:"totalSalesCount"`
	TopProducts     []ProductSales `json:"topProducts"`
	PaymentMethods  []MethodAmount `json:"paymentMethods"`
}

// StockOverview summarizes stock health: how many products sit at or under
// their low-stock threshold, and the lowest-quantity products first.
type StockOverview struct {
	LowStockCount    int64     `json:"lowStockCount"`
	LowStockProducts []Product `json:"lowStockProducts"`
}

// AccountBalance is the all-time running balance of one payment method.
type AccountBalance struct {
	Method  string          `json:"method"`
	Balance decimal.Decimal `json:"balance"`
}

// PerformanceComparison holds current-vs-previous-period figures for sales and
// profit. The previous period is always the immediately preceding window of
// equal length.
type PerformanceComparison struct {
	CurrentRevenue   decimal.Decimal `json:"currentRevenue"`
	PreviousRevenue  decimal.Decimal `json:"previousRevenue"`
	RevenueChangePct decimal.Decimal `json:"revenueChangePct"`
	CurrentProfit    decimal.Decimal `json:"currentProfit"`
	PreviousProfit   decimal.Decimal `json:"previousProfit"`
	ProfitChangePct  decimal.Decimal `json:"profitChangePct"`
	CurrentExpense   decimal.Decimal `json:"currentExpense"`
	PreviousExpense  decimal.Decimal `json:"previousExpense"`
}

// DashboardSummary is the joined result of one dashboard request: every
// aggregate for the selected store, currency and range, computed concurrently
// and assembled into a single value.
type DashboardSummary struct {
	StoreID  string    `json:"storeID"`
	Currency string    `json:"currency"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`

	TodaySalesTotal decimal.Decimal `json:"todaySalesTotal"`
	TodaySalesCount int64           `json:"todaySalesCount"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalIncomes    decimal.Decimal `json:"totalIncomes"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	NetProfit       decimal.Decimal `json:"netProfit"`
	ProfitMargin    decimal.Decimal `json:"profitMargin"`

	NewDebtsAmount   decimal.Decimal  `json:"newDebtsAmount"`
	OutstandingDebts decimal.Decimal  `json:"outstandingDebts"`
	Payables         decimal.Decimal  `json:"payables"`
	CashBalance      decimal.Decimal  `json:"cashBalance"`
	AccountBalances  []AccountBalance `json:"accountBalances"`

	Sales        SalesData             `json:"sales"`
	ProductCount int64                 `json:"productCount"`
	Stock        StockOverview         `json:"stock"`
	ActivityFeed []ActivityLogEntry    `json:"activityFeed"`
	Trend        []TrendPoint          `json:"trend"`
	Expenses     []CategoryAmount      `json:"expenseBreakdown"`
	Performance  PerformanceComparison `json:"performance"`
	SmartInsight string                `json:"smartInsight"`
}
