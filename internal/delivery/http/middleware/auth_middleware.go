package middleware

import (
	"net/http"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// AuthMiddleware resolves the session cookie into a user for protected routes.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate validates the session cookie. Requests without a valid,
// unexpired session are rejected with 401; the session's user is stored on
// the echo context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "session cookie is missing"})
		}

		user, err := m.sessions.Resolve(c.Request().Context(), cookie.Value)
		if err != nil {
			return err
		}
		if user == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired session"})
		}

		c.Set(string(deliverycontext.KeyUser), user)

		return next(c)
	}
}

// CurrentUser extracts the authenticated user set by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(deliverycontext.KeyUser)).(*entity.User)

	return user, ok
}
