package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	"github.com/SscSPs/blog_api/internal/models"
	"github.com/SscSPs/blog_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const userColumns = `user_id, username, email, password_hash, role, first_name, last_name,
	website, facebook, instagram, linkedin, x, youtube, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DB) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.FirstName,
		&m.LastName,
		&m.SocialLinks.Website,
		&m.SocialLinks.Facebook,
		&m.SocialLinks.Instagram,
		&m.SocialLinks.LinkedIn,
		&m.SocialLinks.X,
		&m.SocialLinks.YouTube,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`

	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Username, m.Email, m.PasswordHash, m.Role, m.FirstName, m.LastName,
		m.SocialLinks.Website, m.SocialLinks.Facebook, m.SocialLinks.Instagram,
		m.SocialLinks.LinkedIn, m.SocialLinks.X, m.SocialLinks.YouTube,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with this username or email already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, role = $4, first_name = $5, last_name = $6,
			website = $7, facebook = $8, instagram = $9, linkedin = $10, x = $11, youtube = $12,
			updated_at = $13
		WHERE user_id = $14;`

	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Username, m.Email, m.PasswordHash, m.Role, m.FirstName, m.LastName,
		m.SocialLinks.Website, m.SocialLinks.Facebook, m.SocialLinks.Instagram,
		m.SocialLinks.LinkedIn, m.SocialLinks.X, m.SocialLinks.YouTube,
		m.UpdatedAt, m.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username or email already in use: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteUser removes the user and its sessions in one transaction.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
