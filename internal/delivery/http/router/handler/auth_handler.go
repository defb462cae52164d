// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for signup, login and signout handlers.
type AuthHandler struct {
	users    usecase.UserUsecase
	auth     usecase.AuthUsecase
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(users usecase.UserUsecase, auth usecase.AuthUsecase, sessions usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:    users,
		auth:     auth,
		sessions: sessions,
		logger:   logger,
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Signup handles the user registration request and logs the new user in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input signupRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.users.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session, err := h.sessions.Create(c.Request().Context(), output.User.ID)
	if err != nil {
		return errors.WithStack(err)
	}
	setSessionCookie(c, session.Token, session.Expires)

	return response.Success(c, http.StatusCreated, userResponse{
		ID:       output.User.ID,
		Username: output.User.Username,
	}, "User registered successfully")
}

// Login handles the credential check and opens a session on success.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.auth.Authenticate(c.Request().Context(), usecase.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		// Unknown email and wrong password get the same answer.
		return response.Unauthorized(c, "INVALID_CREDENTIALS", "Incorrect email or password")
	}

	session, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}
	setSessionCookie(c, session.Token, session.Expires)

	return response.Success(c, http.StatusOK, userResponse{
		ID:       user.ID,
		Username: user.Username,
	}, "Login successful")
}

// Signout ends the current session, if any, and clears the cookie.
func (h *AuthHandler) Signout(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}
	clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully signed out"}, "Signout successful")
}

// Me returns the user bound to the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "No authenticated user on this request")
	}

	return response.Success(c, http.StatusOK, userResponse{
		ID:       user.ID,
		Username: user.Username,
	}, "Profile retrieved successfully")
}

func setSessionCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
