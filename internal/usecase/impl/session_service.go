package impl

import (
	"context"
	"log/slog"
	"time"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 24 * time.Hour

// sessionService implements the SessionUsecase interface using
// database-backed sessions with opaque tokens.
type sessionService struct {
	sessionRepo repository.SessionRepository
	authUsecase usecase.AuthUsecase
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	AuthUsecase usecase.AuthUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	sessionTTL := defaultSessionTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionTTL > 0 {
		sessionTTL = params.Config.Auth.SessionTTL
	}

	return &sessionService{
		sessionRepo: params.SessionRepo,
		authUsecase: params.AuthUsecase,
		sessionTTL:  sessionTTL,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a new session for the user. The token is an opaque random
// value; nothing about the user can be derived from it.
func (srv *sessionService) Create(ctx context.Context, userID int64) (*entity.Session, error) {
	session := &entity.Session{
		ID:      uuid.New().String(),
		Token:   uuid.New().String(),
		UserID:  userID,
		Expires: time.Now().Add(srv.sessionTTL),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Debug("Session created", slog.Int64("userID", userID), slog.String("sessionID", session.ID))

	return session, nil
}

// Resolve maps a session token to its user. Unknown tokens and expired
// sessions both come back as (nil, nil); expired sessions are removed.
func (srv *sessionService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	session, err := srv.sessionRepo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session")
	}

	if time.Now().After(session.Expires) {
		srv.log(ctx).Debug("Session expired", slog.String("sessionID", session.ID))

		if err := srv.sessionRepo.DeleteByToken(ctx, token); err != nil {
			srv.log(ctx).Warn("Failed to remove expired session", slog.String("sessionID", session.ID), slog.Any("error", err))
		}

		return nil, nil
	}

	user, err := srv.authUsecase.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session user")
	}

	// A session whose user vanished is treated as no session at all.
	return user, nil
}

// Destroy ends the session identified by the token.
func (srv *sessionService) Destroy(ctx context.Context, token string) error {
	if err := srv.sessionRepo.DeleteByToken(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to destroy session", slog.Any("error", err))

		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}

// CleanupExpired removes all expired sessions.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to clean up expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to clean up expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Removed expired sessions", slog.Int64("count", removed))
	}

	return removed, nil
}
