package domain

import "github.com/shopspring/decimal"

// Product is one stock item. Cost and sale prices are kept per currency so a
// store can price the same item in USD and SLSH independently.
type Product struct {
	ProductID         string                     `json:"productID"`
	StoreID           string                     `json:"storeID"`
	Name              string                     `json:"name"`
	Quantity          int64                      `json:"quantity"`
	CostPrices        map[string]decimal.Decimal `json:"costPrices"`
	SalePrices        map[string]decimal.Decimal `json:"salePrices"`
	Category          string                     `json:"category"`
	LowStockThreshold int64                      `json:"lowStockThreshold"`
}
