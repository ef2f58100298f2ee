package domain

import "time"

// ActivityLogEntry is one row of the read-only activity feed other subsystems
// append to.
type ActivityLogEntry struct {
	EntryID     string    `json:"entryID"`
	StoreID     string    `json:"storeID"`
	Description string    `json:"description"`
	UserName    string    `json:"userName"`
	OccurredAt  time.Time `json:"occurredAt"`
}
