package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/blogforge/apiserver/types"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *UserRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewUserRepository(db)
}

func TestUserRepository_GetByEmail_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, slug, image, password_hash, created_at, updated_at")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "slug", "image", "password_hash", "created_at", "updated_at",
		}).AddRow(1, "Alice", "alice@example.com", "alice-example-com", "", "$2a$10$hash", now, now))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT r.name")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("user").AddRow("author"))

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice-example-com", user.Slug)
	assert.ElementsMatch(t, []string{"user", "author"}, user.Roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, slug, image, password_hash, created_at, updated_at")).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Alice", "alice@example.com", "alice-example-com", "", "$2a$10$hash",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_roles")).
		WithArgs(7, "user").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), types.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		Slug:         "alice-example-com",
		Roles:        []string{"user"},
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: pqUniqueViolation})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), types.User{
		Email: "alice@example.com",
		Roles: []string{"user"},
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs("Alice", "http://cdn/img.jpg", "$2a$10$hash", sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.Update(context.Background(), types.User{
		ID:           1,
		Name:         "Alice",
		Image:        "http://cdn/img.jpg",
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), types.User{ID: 42})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
