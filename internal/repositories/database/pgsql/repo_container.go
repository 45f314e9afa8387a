package pgsql

import (
	portsrepo "github.com/SscSPs/abase_form_kit/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL-backed repositories. The address
// directory is external and is set by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, directory portsrepo.AddressDirectory) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PreferenceRepo:   newPgxPreferenceRepository(dbPool),
		AddressDirectory: directory,
	}
}
