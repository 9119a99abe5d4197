package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID_EmptyOutsideRequest(t *testing.T) {
	c := newEchoContext()

	assert.Empty(t, RequestID(c))
	assert.Empty(t, RequestIDFromContext(c.Request().Context()))
}

func TestSetRequestID_ReachesRequestContext(t *testing.T) {
	c := newEchoContext()

	SetRequestID(c, "req-9")

	assert.Equal(t, "req-9", RequestID(c))
	assert.Equal(t, "req-9", RequestIDFromContext(c.Request().Context()))
}

func TestLogger_Fallback(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Same(t, scoped, Logger(WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, Logger(WithLogger(context.Background(), nil), fallback))
}

func TestBindCaller(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), slog.New(slog.NewTextHandler(buf, nil)))))
	userID := uuid.New()

	BindCaller(c, userID)

	got, ok := UserIDFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, userID, got)

	Logger(c.Request().Context(), nil).Info("cancelled")
	assert.Contains(t, buf.String(), "user_id="+userID.String())
}

func TestUserIDFromContext_RejectsNil(t *testing.T) {
	_, ok := UserIDFromContext(WithUserID(context.Background(), uuid.Nil))
	assert.False(t, ok)

	_, ok = UserIDFromContext(context.Background())
	assert.False(t, ok)
}
