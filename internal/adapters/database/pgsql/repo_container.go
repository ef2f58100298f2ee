package pgsql

import (
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the Postgres-backed repositories. The report
// cache repository lives in the redis adapter and is attached by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		RecordQueryRepo: newRecordQueryRepository(dbPool),
		StoreRepo:       newStoreRepository(dbPool),
	}
}
