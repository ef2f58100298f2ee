package domain

// StoreMembership ties an authenticated user to the store they report on and
// the role that decides what they may see.
type StoreMembership struct {
	UserID  string    `json:"userID"`
	StoreID string    `json:"storeID"`
	Role    StoreRole `json:"role"`
}
