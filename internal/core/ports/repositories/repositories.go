package repositories

import "context"

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	RefreshTokenRepo RefreshTokenRepository
	BlogRepo         BlogRepositoryFacade

	// Ping checks the primary store; used by the readiness endpoint.
	Ping Pinger
}
