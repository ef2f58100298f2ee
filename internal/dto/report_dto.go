package dto

import (
	"time"

	"github.com/dukaan-apps/duka_backend/internal/utils/timeperiod"
)

// dateLayout is the wire format for report range bounds.
const dateLayout = "2006-01-02"

// RangeQuery carries the optional reporting window and currency of a report
// or dashboard request. Empty fields fall back to the server defaults.
type RangeQuery struct {
	Currency string `form:"currency" binding:"omitempty,currencycode"`
	From     string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// Window resolves the query's bounds against the default reporting window.
// Dates are interpreted in the store timezone; From snaps to the start of its
// day and To to the end of its day.
func (q RangeQuery) Window(now time.Time, tz *time.Location) (time.Time, time.Time, error) {
	from, to := timeperiod.Default(now.In(tz))

	if q.From != "" {
		parsed, err := time.ParseInLocation(dateLayout, q.From, tz)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = timeperiod.DayStart(parsed)
	}
	if q.To != "" {
		parsed, err := time.ParseInLocation(dateLayout, q.To, tz)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = timeperiod.DayEnd(parsed)
	}
	return from, to, nil
}

// ReportQuery is the query surface of the reports-tabs endpoint.
type ReportQuery struct {
	RangeQuery
	View string `form:"view" binding:"required"`
}
