package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// SessionUsecase manages server-side login sessions keyed by opaque tokens.
type SessionUsecase interface {
	// Create opens a new session for the user and returns it, token included.
	Create(ctx context.Context, userID int64) (*entity.Session, error)

	// Resolve maps a session token to its user. It returns (nil, nil) when
	// the token is unknown or the session has expired; expired sessions are
	// removed as a side effect.
	Resolve(ctx context.Context, token string) (*entity.User, error)

	// Destroy ends the session identified by the token. Destroying an
	// unknown token is a no-op.
	Destroy(ctx context.Context, token string) error

	// CleanupExpired removes all expired sessions and reports how many
	// were removed.
	CleanupExpired(ctx context.Context) (int64, error)
}
