package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quill/config"
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/validator"
	"quill/internal/domain/entity"
	"quill/internal/domain/repository"
	"quill/internal/infra/auth"
	mockrepo "quill/internal/mocks/repository"
	"quill/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testApp wires real usecase services over mocked repositories behind a
// fully configured echo instance, so requests travel the same path as in
// production: bind, validate, usecase, error handler.
type testApp struct {
	echo        *echo.Echo
	userRepo    *mockrepo.MockUserRepository
	accountRepo *mockrepo.MockAccountRepository
	sessionRepo *mockrepo.MockSessionRepository
	txManager   *mockrepo.FakeTransactionManager
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	userRepo := new(mockrepo.MockUserRepository)
	accountRepo := new(mockrepo.MockAccountRepository)
	sessionRepo := new(mockrepo.MockSessionRepository)
	txManager := &mockrepo.FakeTransactionManager{
		Factory: &mockrepo.FakeRepositoryFactory{
			UserRepo:    userRepo,
			AccountRepo: accountRepo,
		},
	}

	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   logger,
	})
	userUsecase := impl.NewUserService(impl.UserServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Logger:    logger,
	})
	sessionUsecase := impl.NewSessionService(impl.SessionServiceParams{
		SessionRepo: sessionRepo,
		AuthUsecase: authUsecase,
		Config:      cfg,
		Logger:      logger,
	})

	authHandler := NewAuthHandler(userUsecase, authUsecase, sessionUsecase, logger)
	authMiddleware := middleware.NewAuthMiddleware(sessionUsecase)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/signout", authHandler.Signout)
	e.GET("/me", authHandler.Me, authMiddleware.Authenticate)

	return &testApp{
		echo:        e,
		userRepo:    userRepo,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
	}
}

func (app *testApp) request(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Signup(t *testing.T) {
	app := newTestApp(t)

	app.userRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 7
		}).
		Return(nil)
	app.accountRepo.On("CreateEmailAccount", mock.Anything, mock.Anything).Return(nil)
	app.sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	rec := app.request(http.MethodPost, "/signup", `{"username":"bob","email":"bob@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)
	assert.Equal(t, 1, app.txManager.Calls)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_Signup_RejectsShortPassword(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodPost, "/signup", `{"username":"bob","email":"bob@example.com","password":"short"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	app.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, 0, app.txManager.Calls)
}

func TestAuthHandler_Login(t *testing.T) {
	app := newTestApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{ID: 7, Username: "bob"}
	account := &entity.Account{ID: 1, UserID: 7, Kind: entity.AccountKindEmail, Email: "bob@example.com", PasswordHash: string(hash)}
	app.userRepo.On("FindByEmailAccount", mock.Anything, "bob@example.com").Return(user, account, nil)
	app.sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	rec := app.request(http.MethodPost, "/login", `{"email":"bob@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)
	require.NotNil(t, sessionCookie(rec))
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	app := newTestApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{ID: 7, Username: "bob"}
	account := &entity.Account{ID: 1, UserID: 7, Kind: entity.AccountKindEmail, Email: "bob@example.com", PasswordHash: string(hash)}
	app.userRepo.On("FindByEmailAccount", mock.Anything, "bob@example.com").Return(user, account, nil)

	rec := app.request(http.MethodPost, "/login", `{"email":"bob@example.com","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Nil(t, sessionCookie(rec))
	app.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	app := newTestApp(t)

	app.userRepo.On("FindByEmailAccount", mock.Anything, "nobody@example.com").
		Return(nil, nil, repository.ErrUserNotFound)

	rec := app.request(http.MethodPost, "/login", `{"email":"nobody@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Me(t *testing.T) {
	app := newTestApp(t)

	session := &entity.Session{ID: "sid", Token: "tok", UserID: 7, Expires: time.Now().Add(time.Hour)}
	app.sessionRepo.On("FindByToken", mock.Anything, "tok").Return(session, nil)
	app.userRepo.On("FindByID", mock.Anything, int64(7)).Return(&entity.User{ID: 7, Username: "bob"}, nil)

	rec := app.request(http.MethodGet, "/me", "", &http.Cookie{Name: middleware.SessionCookieName, Value: "tok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)
}

func TestAuthHandler_Me_WithoutCookie(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodGet, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Signout(t *testing.T) {
	app := newTestApp(t)

	app.sessionRepo.On("DeleteByToken", mock.Anything, "tok").Return(nil)

	rec := app.request(http.MethodPost, "/signout", "", &http.Cookie{Name: middleware.SessionCookieName, Value: "tok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	app.sessionRepo.AssertCalled(t, "DeleteByToken", mock.Anything, "tok")

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
