package mongodb

import (
	"context"

	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// NewRepositoryProvider builds the MongoDB-backed repositories on db.
func NewRepositoryProvider(db *mongo.Database) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newMongoUserRepository(db),
		RefreshTokenRepo: newMongoRefreshTokenRepository(db),
		BlogRepo:         newMongoBlogRepository(db),
		Ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, readpref.Primary())
		},
	}
}
