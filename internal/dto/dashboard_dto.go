package dto

// DashboardQuery is the query surface of the dashboard endpoint. The
// dashboard always computes in real time, so the window and currency are the
// only knobs.
type DashboardQuery struct {
	RangeQuery
}

// ActivityQuery pages the standalone activity feed endpoint.
type ActivityQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
