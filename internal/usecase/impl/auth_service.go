package impl

import (
	"context"
	"log/slog"
	"time"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is a valid bcrypt encoding of a throwaway value. When no
// account matches the submitted email, the password is still checked against
// this hash so both miss paths cost one bcrypt comparison.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	acquireTimeout time.Duration
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var acquireTimeout time.Duration
	if params.Config != nil && params.Config.Postgres != nil {
		acquireTimeout = params.Config.Postgres.Pool.AcquireTimeout
	}

	return &authService{
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		acquireTimeout: acquireTimeout,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type emailAccountLookup struct {
	user    *entity.User
	account *entity.Account
}

// Authenticate checks the submitted credentials against the stored email
// account. Unknown email and wrong password are both reported as (nil, nil)
// so callers cannot tell the cases apart.
func (srv *authService) Authenticate(ctx context.Context, creds usecase.Credentials) (*entity.User, error) {
	srv.log(ctx).Debug("Authenticating credentials", slog.String("email", creds.Email))

	lookup, err := dispatch(ctx, srv.acquireTimeout, func(taskCtx context.Context) (emailAccountLookup, error) {
		user, account, findErr := srv.userRepo.FindByEmailAccount(taskCtx, creds.Email)

		return emailAccountLookup{user: user, account: account}, findErr
	})

	if errors.Is(err, repository.ErrUserNotFound) {
		// Burn a comparison so this path costs the same as a wrong password.
		srv.hasher.Check(creds.Password, dummyPasswordHash)
		srv.log(ctx).Debug("Authentication failed", slog.String("email", creds.Email))

		return nil, nil
	}
	if err != nil {
		srv.log(ctx).Error("Authentication lookup failed", slog.String("email", creds.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up email account")
	}

	if !srv.hasher.Check(creds.Password, lookup.account.PasswordHash) {
		srv.log(ctx).Debug("Authentication failed", slog.String("email", creds.Email))

		return nil, nil
	}

	srv.log(ctx).Debug("Authentication succeeded", slog.Int64("userID", lookup.user.ID))

	return lookup.user, nil
}

// GetUser resolves a user by ID, returning (nil, nil) when no such user exists.
func (srv *authService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := dispatch(ctx, srv.acquireTimeout, func(taskCtx context.Context) (*entity.User, error) {
		return srv.userRepo.FindByID(taskCtx, id)
	})

	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user", slog.Int64("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
