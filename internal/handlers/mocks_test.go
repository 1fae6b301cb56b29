package handlers_test

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/blog_api/internal/core/domain"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/dto"
	"github.com/SscSPs/blog_api/internal/platform/config"
	"github.com/stretchr/testify/mock"
)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) MintAccessToken(userID string) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) MintRefreshToken(userID string) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) VerifyAccessToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyRefreshToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest, client domain.ClientInfo) (*domain.User, *domain.TokenPair, error) {
	args := m.Called(ctx, req, client)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.TokenPair), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest, client domain.ClientInfo) (*domain.User, *domain.TokenPair, error) {
	args := m.Called(ctx, req, client)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.TokenPair), args.Error(2)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string, client domain.ClientInfo) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// --- Mock Authorizer ---
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeRole(ctx context.Context, userID string, allowed []domain.Role) (*domain.User, error) {
	args := m.Called(ctx, userID, allowed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock BlogService ---
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) CreateBlog(ctx context.Context, req dto.CreateBlogRequest, authorID string) (*domain.Blog, error) {
	args := m.Called(ctx, req, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.TokenSvcFacade = (*MockTokenService)(nil)
	_ portssvc.AuthSvcFacade  = (*MockAuthService)(nil)
	_ portssvc.AuthorizerSvc  = (*MockAuthorizer)(nil)
	_ portssvc.UserSvcFacade  = (*MockUserService)(nil)
	_ portssvc.BlogSvcFacade  = (*MockBlogService)(nil)
)

func testConfig() *config.Config {
	return &config.Config{
		Port:                       "8080",
		StoreDriver:                config.StoreMemory,
		SessionStore:               config.SessionStorePrimary,
		JWTAccessSecret:            "test-access-secret-that-is-long-enough",
		JWTAccessExpiryDuration:    15 * time.Minute,
		JWTRefreshSecret:           "test-refresh-secret-that-is-long-enough",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
		JWTIssuer:                  "blog-api",
		RefreshTokenCookieName:     "refreshToken",
		RefreshTokenCookiePath:     "/api/v1/auth",
		AdminWhitelistedEmails:     []string{"boss@example.com"},
		RateLimit:                  "1000-M",
		AuthRateLimit:              "1000-M",
		BcryptCost:                 4,
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
