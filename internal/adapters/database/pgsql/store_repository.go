package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dukaan-apps/duka_backend/internal/apperrors"
	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// storeRepository implements the StoreRepository interface.
type storeRepository struct {
	BaseRepository
}

func newStoreRepository(db *pgxpool.Pool) portsrepo.StoreRepository {
	return &storeRepository{BaseRepository: BaseRepository{Pool: db}}
}

// FindMembershipByUser resolves which store a user reports on. Each user
// belongs to at most one store.
func (r *storeRepository) FindMembershipByUser(ctx context.Context, userID string) (*domain.StoreMembership, error) {
	query := `SELECT user_id, store_id, role FROM store_members WHERE user_id = $1`

	var m domain.StoreMembership
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&m.UserID, &m.StoreID, &m.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying store membership: %w", err)
	}
	return &m, nil
}
