package postgres

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	expires := time.Now().Add(24 * time.Hour)
	mock.ExpectExec(`INSERT INTO "sessions"`).
		WithArgs("sid-1", "token-abc", int64(42), expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &entity.Session{
		ID:      "sid-1",
		Token:   "token-abc",
		UserID:  42,
		Expires: expires,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindByToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE session_token =`).
		WithArgs("token-abc", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_token", "user_id", "expires"}).
			AddRow("sid-1", "token-abc", int64(42), expires))

	session, err := repo.FindByToken(context.Background(), "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "sid-1", session.ID)
	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, expires, session.Expires)
}

func TestSessionRepository_FindByToken_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE session_token =`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_token", "user_id", "expires"}))

	session, err := repo.FindByToken(context.Background(), "missing")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_DeleteByToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`DELETE FROM "sessions" WHERE session_token =`).
		WithArgs("token-abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteByToken(context.Background(), "token-abc")
	require.NoError(t, err)

	// Deleting an unknown token is a no-op, not an error.
	mock.ExpectExec(`DELETE FROM "sessions" WHERE session_token =`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteByToken(context.Background(), "missing")
	require.NoError(t, err)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`DELETE FROM "sessions" WHERE expires <=`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
