package middleware

import (
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards routes by the identity held in the session store.
type SessionMiddleware struct {
	session usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(session usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

// RequireSession rejects guests.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.session.User() == nil {
			return response.Unauthorized(c, domainerrors.ErrSignInRequired.ErrorCode(), domainerrors.ErrSignInRequired.Message())
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the signed-in user's role.
func (m *SessionMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := m.session.User()
			if user == nil {
				return response.Unauthorized(c, domainerrors.ErrSignInRequired.ErrorCode(), domainerrors.ErrSignInRequired.Message())
			}
			if user.Role != role {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}
