package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoRepositorySuite runs against a real server; set MONGO_TEST_URI to enable it.
type MongoRepositorySuite struct {
	suite.Suite
	client *mongo.Client
	db     *mongo.Database
	ctx    context.Context
}

func TestMongoRepositorySuite(t *testing.T) {
	if os.Getenv("MONGO_TEST_URI") == "" {
		t.Skip("MONGO_TEST_URI not set, skipping MongoDB integration tests")
	}
	suite.Run(t, new(MongoRepositorySuite))
}

func (s *MongoRepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	client, err := mongo.Connect(options.Client().ApplyURI(os.Getenv("MONGO_TEST_URI")))
	s.Require().NoError(err)
	s.client = client
	s.db = client.Database("blog_api_test_" + uuid.NewString()[:8])
	s.Require().NoError(EnsureIndexes(s.ctx, s.db))
}

func (s *MongoRepositorySuite) TearDownSuite() {
	_ = s.db.Drop(s.ctx)
	_ = s.client.Disconnect(s.ctx)
}

func newUser(email, username string) domain.User {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleUser,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
}

func (s *MongoRepositorySuite) TestUserLifecycle() {
	repo := newMongoUserRepository(s.db)
	u := newUser("carol@example.com", "carol")

	s.Require().NoError(repo.CreateUser(s.ctx, u))
	s.ErrorIs(repo.CreateUser(s.ctx, newUser("carol@example.com", "carol2")), apperrors.ErrDuplicate)
	s.ErrorIs(repo.CreateUser(s.ctx, newUser("carol2@example.com", "carol")), apperrors.ErrDuplicate)

	got, err := repo.FindUserByEmail(s.ctx, "carol@example.com")
	s.Require().NoError(err)
	s.Equal(u, *got)

	u.FirstName = "Carol"
	u.SocialLinks.YouTube = "https://youtube.com/@carol"
	s.Require().NoError(repo.UpdateUser(s.ctx, u))
	got, err = repo.FindUserByID(s.ctx, u.UserID)
	s.Require().NoError(err)
	s.Equal("Carol", got.FirstName)
	s.Equal("https://youtube.com/@carol", got.SocialLinks.YouTube)

	s.Require().NoError(repo.DeleteUser(s.ctx, u.UserID))
	_, err = repo.FindUserByID(s.ctx, u.UserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(repo.DeleteUser(s.ctx, u.UserID), apperrors.ErrNotFound)
}

func (s *MongoRepositorySuite) TestRefreshTokens() {
	repo := newMongoRefreshTokenRepository(s.db)
	now := time.Now().UTC().Truncate(time.Millisecond)

	live := domain.RefreshToken{TokenHash: uuid.NewString(), UserID: "u1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	stale := domain.RefreshToken{TokenHash: uuid.NewString(), UserID: "u1", CreatedAt: now, ExpiresAt: now.Add(-time.Minute)}
	s.Require().NoError(repo.CreateRefreshToken(s.ctx, live))
	s.Require().NoError(repo.CreateRefreshToken(s.ctx, stale))

	got, err := repo.FindRefreshToken(s.ctx, live.TokenHash)
	s.Require().NoError(err)
	s.Equal(live, *got)

	_, err = repo.FindRefreshToken(s.ctx, stale.TokenHash)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(repo.DeleteRefreshToken(s.ctx, live.TokenHash))
	s.Require().NoError(repo.DeleteRefreshToken(s.ctx, live.TokenHash))
	_, err = repo.FindRefreshToken(s.ctx, live.TokenHash)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(repo.DeleteRefreshTokensByUserID(s.ctx, "u1"))
}

func TestEnsureIndexes_RequiresServer(t *testing.T) {
	if os.Getenv("MONGO_TEST_URI") == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	client, err := mongo.Connect(options.Client().ApplyURI(os.Getenv("MONGO_TEST_URI")))
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database("blog_api_idx_" + uuid.NewString()[:8])
	defer func() { _ = db.Drop(context.Background()) }()

	assert.NoError(t, EnsureIndexes(context.Background(), db))
	assert.NoError(t, EnsureIndexes(context.Background(), db))
}
