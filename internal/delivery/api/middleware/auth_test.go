package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "staffing/internal/delivery/context"
	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/service"
	mockService "staffing/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/workers/me/tier", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_SetsIdentity(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{
		Roles:            []string{"WORKER", "UNKNOWN"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)

	c := newAuthContext("Bearer good-token")
	require.NoError(t, m.Authenticate(okHandler)(c))

	gotID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)

	roles, ok := GetRoles(c)
	require.True(t, ok)
	assert.Equal(t, entity.Roles{entity.RoleWorker}, roles)

	ctxID, ok := deliverycontext.UserIDFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, userID, ctxID)
}

func TestAuthenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(m *mockService.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
		},
		{
			name:   "bad subject",
			header: "Bearer odd",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("odd").Return(&service.Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(newAuthContext(tt.header))

			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	c := newAuthContext("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleHotel})
	assert.NoError(t, m.RequireRole(entity.RoleHotel)(okHandler)(c))
	assert.ErrorIs(t, m.RequireRole(entity.RoleWorker)(okHandler)(c), domainerrors.ErrForbidden)

	assert.ErrorIs(t, m.RequireRole(entity.RoleAdmin)(okHandler)(newAuthContext("")), domainerrors.ErrForbidden)
}

func TestGetUserID_RejectsNil(t *testing.T) {
	c := newAuthContext("")
	c.Set(contextKeyUserID, uuid.Nil)

	_, ok := GetUserID(c)

	assert.False(t, ok)
}
