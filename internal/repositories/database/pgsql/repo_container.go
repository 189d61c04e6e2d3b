package pgsql

import (
	portsrepo "github.com/budgie-app/budgie/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx repositories onto a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		AccountRepo: newPgxAccountRepository(dbPool),
		TagRepo:     newPgxTagRepository(dbPool),
		EntryRepo:   newPgxEntryRepository(dbPool),
	}
}
