package pgsql

import (
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the Postgres-backed repositories.
func NewRepositoryProvider(db DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(db),
		RefreshTokenRepo: newPgxRefreshTokenRepository(db),
		BlogRepo:         newPgxBlogRepository(db),
		Ping:             db.Ping,
	}
}
