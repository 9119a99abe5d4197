// Package middleware contains echo middleware specific to the JSON API.
package middleware

import (
	"strings"

	deliverycontext "staffing/internal/delivery/context"
	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	bearerPrefix = "Bearer "
)

// AuthMiddleware validates access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores the caller's identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
		}

		userID, err := claims.UserID()
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "invalid subject claim")
		}

		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))
		deliverycontext.BindCaller(c, userID)

		return next(c)
	}
}

// RequireRole rejects callers lacking the role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return errors.Wrap(domainerrors.ErrForbidden, "role information missing")
			}
			if !roles.Contains(role) {
				return errors.Wrapf(domainerrors.ErrForbidden, "requires role %s", role)
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated roles set by Authenticate.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}
