package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	"github.com/SscSPs/blog_api/internal/models"
	"github.com/SscSPs/blog_api/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const refreshTokensCollection = "refresh_tokens"

type MongoRefreshTokenRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func newMongoRefreshTokenRepository(db *mongo.Database) *MongoRefreshTokenRepository {
	return &MongoRefreshTokenRepository{coll: db.Collection(refreshTokensCollection), now: time.Now}
}

var _ portsrepo.RefreshTokenRepository = (*MongoRefreshTokenRepository)(nil)

func (r *MongoRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	if _, err := r.coll.InsertOne(ctx, mapping.ToModelRefreshToken(token)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("refresh token already stored: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}
	return nil
}

// FindRefreshToken filters on expiresAt as well, since the TTL monitor only
// sweeps about once a minute.
func (r *MongoRefreshTokenRepository) FindRefreshToken(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	filter := bson.M{
		"tokenHash": tokenHash,
		"expiresAt": bson.M{"$gt": r.now().UTC()},
	}

	var m models.RefreshToken
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	token := mapping.ToDomainRefreshToken(m)
	return &token, nil
}

func (r *MongoRefreshTokenRepository) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"tokenHash": tokenHash}); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *MongoRefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("failed to delete refresh tokens of user: %w", err)
	}
	return nil
}

func (r *MongoRefreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lte": before.UTC()}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return res.DeletedCount, nil
}
