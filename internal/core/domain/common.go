package domain

// StoreRole is the role a user holds within a store. Reporting redaction is
// keyed off this: admins and managers see financial figures, everyone else
// receives an operational-only view.
type StoreRole string

const (
	RoleAdmin   StoreRole = "admin"
	RoleManager StoreRole = "manager"
	RoleStaff   StoreRole = "staff"
)

// SeesFinancials reports whether the role may view financially sensitive fields.
func (r StoreRole) SeesFinancials() bool {
	return r == RoleAdmin || r == RoleManager
}

// DefaultCurrency is the fallback currency slice used when a cached report has
// no entry for the requested currency.
const DefaultCurrency = "USD"

// PaymentMethodCash is the physical cash drawer. Its running balance doubles
// as the dashboard's headline cash figure.
const PaymentMethodCash = "CASH"

// activePaymentMethods maps a currency to the payment methods that can carry
// balances in it. ZAAD and EDAHAB are mobile-money services; SLSH wallets are
// not held at banks.
var activePaymentMethods = map[string][]string{
	"USD":  {PaymentMethodCash, "BANK", "ZAAD", "EDAHAB"},
	"SLSH": {PaymentMethodCash, "ZAAD", "EDAHAB"},
}

// PaymentMethodsForCurrency returns the active payment methods for a currency.
// Unknown currencies fall back to CASH only.
func PaymentMethodsForCurrency(currency string) []string {
	if methods, ok := activePaymentMethods[currency]; ok {
		return methods
	}
	return []string{PaymentMethodCash}
}
