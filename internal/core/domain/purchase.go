package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a business-owed-to-supplier record. RemainingAmount is the
// payable portion still outstanding.
type Purchase struct {
	PurchaseID      string          `json:"purchaseID"`
	StoreID         string          `json:"storeID"`
	Currency        string          `json:"currency"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          string          `json:"status"`
	SupplierName    string          `json:"supplierName"`
	PurchaseDate    time.Time       `json:"purchaseDate"`
}
