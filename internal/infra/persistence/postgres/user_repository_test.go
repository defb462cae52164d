package postgres

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WithArgs(int64(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at"}).
			AddRow(int64(42), "alice", created))

	user, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, created, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WithArgs(int64(999), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at"}))

	user, err := repo.FindByID(context.Background(), 999)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByEmailAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE type = .* AND email = .* ORDER BY id`).
		WithArgs("email", "alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "email", "password"}).
			AddRow(int64(7), int64(42), "email", "alice@example.com", "$2a$10$hash"))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WithArgs(int64(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at"}).
			AddRow(int64(42), "alice", time.Now()))

	user, account, err := repo.FindByEmailAccount(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, entity.AccountKindEmail, account.Kind)
	assert.Equal(t, "$2a$10$hash", account.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailAccount_NoAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE type = .* AND email = .* ORDER BY id`).
		WithArgs("email", "nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "email", "password"}))

	user, account, err := repo.FindByEmailAccount(context.Background(), "nobody@example.com")
	assert.Nil(t, user)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByEmailAccount_OrphanAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE type = .* AND email = .* ORDER BY id`).
		WithArgs("email", "alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "email", "password"}).
			AddRow(int64(7), int64(42), "email", "alice@example.com", "$2a$10$hash"))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WithArgs(int64(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at"}))

	user, account, err := repo.FindByEmailAccount(context.Background(), "alice@example.com")
	assert.Nil(t, user)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("bob", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	user := &entity.User{Username: "bob"}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("bob", sqlmock.AnyArg()).
		WillReturnError(errDuplicateKey("users_username_key"))

	err := repo.Create(context.Background(), &entity.User{Username: "bob"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

// errDuplicateKey fabricates a PostgreSQL unique violation as the driver
// would surface it.
func errDuplicateKey(constraint string) error {
	return &fakePgError{msg: `ERROR: duplicate key value violates unique constraint "` + constraint + `" (SQLSTATE 23505)`}
}

type fakePgError struct{ msg string }

func (e *fakePgError) Error() string { return e.msg }
