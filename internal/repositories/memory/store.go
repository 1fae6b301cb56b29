// Package memory keeps every repository in process memory. It backs local
// development (STORE_DRIVER=memory) and the router-level tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
)

// Store holds users, sessions and blogs behind a single lock.
type Store struct {
	mu sync.RWMutex

	users         map[string]domain.User
	userIDByEmail map[string]string
	userIDByName  map[string]string
	refreshTokens map[string]domain.RefreshToken
	blogs         map[string]domain.Blog
	blogIDBySlug  map[string]string

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:         make(map[string]domain.User),
		userIDByEmail: make(map[string]string),
		userIDByName:  make(map[string]string),
		refreshTokens: make(map[string]domain.RefreshToken),
		blogs:         make(map[string]domain.Blog),
		blogIDBySlug:  make(map[string]string),
		now:           time.Now,
	}
}

// NewRepositoryProvider exposes s through the repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         s,
		RefreshTokenRepo: s,
		BlogRepo:         s,
		Ping:             func(context.Context) error { return nil },
	}
}

var (
	_ portsrepo.UserRepositoryFacade   = (*Store)(nil)
	_ portsrepo.RefreshTokenRepository = (*Store)(nil)
	_ portsrepo.BlogRepositoryFacade   = (*Store)(nil)
)

// --- users ---

func (s *Store) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.UserID]; ok {
		return fmt.Errorf("user id taken: %w", apperrors.ErrDuplicate)
	}
	if _, ok := s.userIDByEmail[user.Email]; ok {
		return fmt.Errorf("email taken: %w", apperrors.ErrDuplicate)
	}
	if _, ok := s.userIDByName[user.Username]; ok {
		return fmt.Errorf("username taken: %w", apperrors.ErrDuplicate)
	}

	s.users[user.UserID] = user
	s.userIDByEmail[user.Email] = user.UserID
	s.userIDByName[user.Username] = user.UserID
	return nil
}

func (s *Store) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDByEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (s *Store) UpdateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[user.UserID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if id, taken := s.userIDByEmail[user.Email]; taken && id != user.UserID {
		return fmt.Errorf("email taken: %w", apperrors.ErrDuplicate)
	}
	if id, taken := s.userIDByName[user.Username]; taken && id != user.UserID {
		return fmt.Errorf("username taken: %w", apperrors.ErrDuplicate)
	}

	delete(s.userIDByEmail, current.Email)
	delete(s.userIDByName, current.Username)
	s.users[user.UserID] = user
	s.userIDByEmail[user.Email] = user.UserID
	s.userIDByName[user.Username] = user.UserID
	return nil
}

func (s *Store) DeleteUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	delete(s.users, userID)
	delete(s.userIDByEmail, user.Email)
	delete(s.userIDByName, user.Username)
	return nil
}

// --- refresh tokens ---

func (s *Store) CreateRefreshToken(_ context.Context, token domain.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.refreshTokens[token.TokenHash]; ok {
		return fmt.Errorf("refresh token already stored: %w", apperrors.ErrDuplicate)
	}
	s.refreshTokens[token.TokenHash] = token
	return nil
}

// FindRefreshToken drops an expired record on sight.
func (s *Store) FindRefreshToken(_ context.Context, tokenHash string) (*domain.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.refreshTokens[tokenHash]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if token.IsExpired(s.now()) {
		delete(s.refreshTokens, tokenHash)
		return nil, apperrors.ErrNotFound
	}
	return &token, nil
}

func (s *Store) DeleteRefreshToken(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.refreshTokens, tokenHash)
	return nil
}

func (s *Store) DeleteRefreshTokensByUserID(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, token := range s.refreshTokens {
		if token.UserID == userID {
			delete(s.refreshTokens, hash)
		}
	}
	return nil
}

func (s *Store) DeleteExpiredRefreshTokens(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for hash, token := range s.refreshTokens {
		if token.IsExpired(before) {
			delete(s.refreshTokens, hash)
			removed++
		}
	}
	return removed, nil
}

// --- blogs ---

func (s *Store) SaveBlog(_ context.Context, blog domain.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogIDBySlug[blog.Slug]; ok {
		return fmt.Errorf("slug taken: %w", apperrors.ErrDuplicate)
	}
	s.blogs[blog.BlogID] = blog
	s.blogIDBySlug[blog.Slug] = blog.BlogID
	return nil
}

func (s *Store) FindBlogByID(_ context.Context, blogID string) (*domain.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blog, ok := s.blogs[blogID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &blog, nil
}
