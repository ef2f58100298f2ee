package repositories

import (
	"context"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
)

// StoreRepository resolves which store a user reports on and with what role.
type StoreRepository interface {
	// FindMembershipByUser returns the store membership for a user, or
	// apperrors.ErrNotFound when the user has no store.
	FindMembershipByUser(ctx context.Context, userID string) (*domain.StoreMembership, error)
}
