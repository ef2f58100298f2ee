package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt statuses. Outstanding aggregations match on "status != paid".
const (
	DebtStatusUnpaid  = "unpaid"
	DebtStatusPartial = "partial"
	DebtStatusPaid    = "paid"
)

// Debt is a customer-owed-to-business balance. AmountDue is the outstanding
// portion, TotalPaid what has been collected so far.
type Debt struct {
	DebtID       string          `json:"debtID"`
	StoreID      string          `json:"storeID"`
	Currency     string          `json:"currency"`
	AmountDue    decimal.Decimal `json:"amountDue"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	Status       string          `json:"status"`
	CustomerName string          `json:"customerName"`
	CreatedAt    time.Time       `json:"createdAt"`
}
