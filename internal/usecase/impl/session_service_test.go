package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"quill/config"
	"quill/internal/domain/entity"
	"quill/internal/domain/repository"
	mockrepo "quill/internal/mocks/repository"
	mockservice "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionService(sessionRepo *mockrepo.MockSessionRepository, auth usecase.AuthUsecase, ttl time.Duration) usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		SessionRepo: sessionRepo,
		AuthUsecase: auth,
		Config:      &config.Config{Auth: &config.AuthConfig{SessionTTL: ttl}},
		Logger:      slog.Default(),
	})
}

func TestSessionService_Create(t *testing.T) {
	sessionRepo := new(mockrepo.MockSessionRepository)

	var created *entity.Session
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Session)
		}).
		Return(nil)

	srv := newSessionService(sessionRepo, nil, time.Hour)
	session, err := srv.Create(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, created, session)
	assert.Equal(t, int64(42), session.UserID)
	assert.NotEmpty(t, session.ID)
	assert.NotEmpty(t, session.Token)
	assert.NotEqual(t, session.ID, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.Expires, time.Minute)
}

func TestSessionService_Create_TokensAreUnique(t *testing.T) {
	sessionRepo := new(mockrepo.MockSessionRepository)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	srv := newSessionService(sessionRepo, nil, time.Hour)

	first, err := srv.Create(context.Background(), 1)
	require.NoError(t, err)
	second, err := srv.Create(context.Background(), 1)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestSessionService_Resolve_Valid(t *testing.T) {
	sessionRepo := new(mockrepo.MockSessionRepository)
	userRepo := new(mockrepo.MockUserRepository)
	hasher := new(mockservice.MockPasswordHasher)
	auth := newAuthService(userRepo, hasher)

	session := &entity.Session{ID: "sid-1", Token: "token-abc", UserID: 42, Expires: time.Now().Add(time.Hour)}
	sessionRepo.On("FindByToken", mock.Anything, "token-abc").Return(session, nil)
	userRepo.On("FindByID", mock.Anything, int64(42)).Return(&entity.User{ID: 42, Username: "alice"}, nil)

	srv := newSessionService(sessionRepo, auth, time.Hour)
	user, err := srv.Resolve(context.Background(), "token-abc")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}

func TestSessionService_Resolve_Expired(t *testing.T) {
	sessionRepo := new(mockrepo.MockSessionRepository)

	session := &entity.Session{ID: "sid-1", Token: "token-abc", UserID: 42, Expires: time.Now().Add(-time.Minute)}
	sessionRepo.On("FindByToken", mock.Anything, "token-abc").Return(session, nil)
	sessionRepo.On("DeleteByToken", mock.Anything, "token-abc").Return(nil)

	srv := newSessionService(sessionRepo, nil, time.Hour)
	user, err := srv.Resolve(context.Background(), "token-abc")

	assert.NoError(t, err)
	assert.Nil(t, user)
	// The expired record is removed on the way out.
	sessionRepo.AssertCalled(t, "DeleteByToken", mock.Anything, "token-abc")
}

func TestSessionService_Resolve_Unknown(t *testing.T) {
	sessionRepo := new(mockrepo.MockSessionRepository)
	sessionRepo.On("FindByToken", mock.Anything, "missing").Return(nil, repository.ErrSessionNotFound)

	srv := newSessionService(sessionRepo, nil, time.Hour)
	user, err := srv.Resolve(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionService_Destroy(t *testing.T) {
	sessionRepo := new(mockrepo.MockSessionRepository)
	sessionRepo.On("DeleteByToken", mock.Anything, "token-abc").Return(nil)

	srv := newSessionService(sessionRepo, nil, time.Hour)
	assert.NoError(t, srv.Destroy(context.Background(), "token-abc"))
}

func TestSessionService_CleanupExpired(t *testing.T) {
	sessionRepo := new(mockrepo.MockSessionRepository)
	sessionRepo.On("DeleteExpired", mock.Anything).Return(int64(3), nil)

	srv := newSessionService(sessionRepo, nil, time.Hour)
	removed, err := srv.CleanupExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
