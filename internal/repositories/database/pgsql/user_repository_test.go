package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserTestFixture(t *testing.T) (*PgxUserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return newPgxUserRepository(mock), mock
}

func sampleUser() domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.User{
		UserID:       "u-1234",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash-abc",
		Role:         domain.RoleUser,
		FirstName:    "Alice",
		LastName:     "Smith",
		SocialLinks:  domain.SocialLinks{Website: "https://alice.dev"},
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
}

func userRow(u domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"user_id", "username", "email", "password_hash", "role", "first_name", "last_name",
		"website", "facebook", "instagram", "linkedin", "x", "youtube", "created_at", "updated_at",
	}).AddRow(
		u.UserID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.FirstName, u.LastName,
		u.SocialLinks.Website, u.SocialLinks.Facebook, u.SocialLinks.Instagram,
		u.SocialLinks.LinkedIn, u.SocialLinks.X, u.SocialLinks.YouTube,
		u.CreatedAt, u.UpdatedAt,
	)
}

func TestUserRepository_CreateUser_Success(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	u := sampleUser()
	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			u.UserID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.FirstName, u.LastName,
			u.SocialLinks.Website, "", "", "", "", "",
			u.CreatedAt, u.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateUser(context.Background(), u)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_Duplicate(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(fmt.Errorf("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.CreateUser(context.Background(), sampleUser())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate), "expected ErrDuplicate, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByID_Success(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	u := sampleUser()
	mock.ExpectQuery("SELECT .+ FROM users WHERE user_id =").
		WithArgs(u.UserID).
		WillReturnRows(userRow(u))

	got, err := repo.FindUserByID(context.Background(), u.UserID)
	require.NoError(t, err)
	assert.Equal(t, u, *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM users WHERE email =").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateUser_NotFound(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE users").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateUser(context.Background(), sampleUser())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateUser_Duplicate(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE users").
		WillReturnError(fmt.Errorf("ERROR: duplicate key value violates unique constraint \"users_email_key\" (SQLSTATE 23505)"))

	err := repo.UpdateUser(context.Background(), sampleUser())
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestUserRepository_DeleteUser_RemovesSessionsInTransaction(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM refresh_tokens WHERE user_id =").
		WithArgs("u-1234").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("DELETE FROM users WHERE user_id =").
		WithArgs("u-1234").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	err := repo.DeleteUser(context.Background(), "u-1234")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteUser_NotFoundRollsBack(t *testing.T) {
	repo, mock := newUserTestFixture(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM refresh_tokens WHERE user_id =").
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM users WHERE user_id =").
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := repo.DeleteUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
