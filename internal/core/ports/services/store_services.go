package services

import (
	"context"

	"github.com/dukaan-apps/duka_backend/internal/core/domain"
)

// StoreSvc resolves the tenant scope of a request: which store the
// authenticated user belongs to and with what role.
type StoreSvc interface {
	// ResolveMembership maps a verified user ID to (store, role). A user
	// without a store gets apperrors.ErrNoStore.
	ResolveMembership(ctx context.Context, userID string) (*domain.StoreMembership, error)
}
