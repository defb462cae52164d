package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrSessionNotFound is returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence operations for server-side sessions.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its opaque token.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// DeleteByToken removes a session by its opaque token, ending it.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteExpired removes all sessions past their expiry and reports
	// how many were removed. Called periodically for cleanup.
	DeleteExpired(ctx context.Context) (int64, error)
}
