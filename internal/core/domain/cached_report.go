package domain

import "time"

// CachedReport is the point-in-time snapshot a scheduled job writes for each
// store. It only covers the default reporting window (start of current month
// through end of today), which is why the read side consults it solely for
// default-range requests. Views maps view name to per-currency report slices.
type CachedReport struct {
	StoreID     string                          `json:"storeId"`
	GeneratedAt time.Time                       `json:"generatedAt"`
	Views       map[string]map[string]TabReport `json:"views"`
}

// Slice looks up the pre-aggregated report for a view/currency pair. When the
// exact currency is absent it degrades to the USD slice before giving up; a
// false return means the caller must recompute in real time.
func (c *CachedReport) Slice(view, currency string) (TabReport, bool) {
	if c == nil {
		return TabReport{}, false
	}
	byCurrency, ok := c.Views[view]
	if !ok {
		return TabReport{}, false
	}
	if slice, ok := byCurrency[currency]; ok {
		return slice, true
	}
	if slice, ok := byCurrency[DefaultCurrency]; ok {
		return slice, true
	}
	return TabReport{}, false
}
