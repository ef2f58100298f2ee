package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one checkout transaction. Note the currency lives in InvoiceCurrency,
// not Currency: sales are denominated per invoice while the ledger collections
// carry a plain currency field. The asymmetry is inherited from the checkout
// subsystem and must not be papered over.
type Sale struct {
	SaleID          string          `json:"saleID"`
	StoreID         string          `json:"storeID"`
	InvoiceCurrency string          `json:"invoiceCurrency"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	CustomerName    string          `json:"customerName"`
	PaymentStatus   string          `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	Items           []SaleItem      `json:"items"`
	PaymentLines    []PaymentLine   `json:"paymentLines"`
}

// SaleItem is one product line within a sale.
type SaleItem struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     int64           `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
}

// PaymentLine attributes a portion of a sale's total to one payment method.
type PaymentLine struct {
	Method string          `json:"method"`
	Value  decimal.Decimal `json:"valueInInvoiceCurrency"`
}
