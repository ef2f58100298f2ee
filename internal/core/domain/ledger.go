package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a single income or expense record. The two collections share
// one shape; which one an entry came from is decided by the query, not the
// struct. Sale revenue is mirrored into the income ledger by the checkout
// subsystem, which is why account balances are computed from ledger entries
// alone and never re-read sales.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	StoreID       string          `json:"storeID"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	UserName      string          `json:"userName"`
	CreatedAt     time.Time       `json:"createdAt"`
}
