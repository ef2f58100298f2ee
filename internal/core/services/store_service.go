package services

import (
	"context"
	"errors"

	"github.com/dukaan-apps/duka_backend/internal/apperrors"
	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaan-apps/duka_backend/internal/core/ports/services"
)

// storeService implements the StoreSvc interface.
type storeService struct {
	BaseService
	stores portsrepo.StoreRepository
}

// NewStoreService creates a new store service.
func NewStoreService(stores portsrepo.StoreRepository) portssvc.StoreSvc {
	return &storeService{stores: stores}
}

var _ portssvc.StoreSvc = (*storeService)(nil)

// ResolveMembership looks up the caller's store membership. A user with no
// membership gets ErrNoStore, which the HTTP layer renders as forbidden.
func (s *storeService) ResolveMembership(ctx context.Context, userID string) (*domain.StoreMembership, error) {
	membership, err := s.stores.FindMembershipByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNoStore
		}
		return nil, err
	}
	return membership, nil
}
