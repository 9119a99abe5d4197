package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staffing/config"
	deliverycontext "staffing/internal/delivery/context"
	domainerrors "staffing/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessLogFixture struct {
	echo *echo.Echo
	buf  *bytes.Buffer
}

func newAccessLogFixture(debug bool) *accessLogFixture {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("service", "staffing"))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return &accessLogFixture{echo: e, buf: buf}
}

func (f *accessLogFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f *accessLogFixture) lines(t *testing.T) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(f.buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		out = append(out, line)
	}

	return out
}

func TestRequestID_KeepsWellFormedInboundID(t *testing.T) {
	f := newAccessLogFixture(false)
	var seen string
	f.echo.GET("/ping", func(c echo.Context) error {
		seen = deliverycontext.RequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "push-41f2")
	rec := f.serve(req)

	assert.Equal(t, "push-41f2", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "push-41f2", seen)
}

func TestRequestID_ReplacesMalformedInboundID(t *testing.T) {
	for name, inbound := range map[string]string{
		"missing":     "",
		"too long":    strings.Repeat("a", maxInboundRequestIDLen+1),
		"has space":   "abc def",
		"non ascii":   "réq",
		"control chr": "abc\x01",
	} {
		t.Run(name, func(t *testing.T) {
			f := newAccessLogFixture(false)
			f.echo.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if inbound != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, inbound)
			}
			rec := f.serve(req)

			_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.NoError(t, err)
		})
	}
}

func TestAccessLog_DebugCarriesRequestFields(t *testing.T) {
	f := newAccessLogFixture(true)
	callerID := uuid.New()
	f.echo.GET("/api/v1/shifts/:id", func(c echo.Context) error {
		deliverycontext.BindCaller(c, callerID)

		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts/42?verbose=1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	f.serve(req)

	lines := f.lines(t)
	require.Len(t, lines, 1)
	line := lines[0]
	assert.Equal(t, "HTTP request", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "staffing", line["service"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, callerID.String(), line["user_id"])
	assert.Equal(t, http.MethodGet, line["method"])
	assert.Equal(t, "/api/v1/shifts/42", line["path"])
	assert.Equal(t, "/api/v1/shifts/:id", line["route"])
	assert.Equal(t, "verbose=1", line["query"])
	assert.EqualValues(t, 200, line["status"])
	assert.EqualValues(t, 2, line["bytes_out"])
}

func TestAccessLog_QuietOutsideDebugUnlessServerError(t *testing.T) {
	f := newAccessLogFixture(false)
	f.echo.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	f.echo.GET("/missing", func(echo.Context) error { return errors.WithStack(domainerrors.ErrShiftNotFound) })
	f.echo.GET("/broken", func(echo.Context) error { return errors.New("db down") })

	f.serve(httptest.NewRequest(http.MethodGet, "/ok", nil))
	f.serve(httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Empty(t, f.lines(t))

	f.serve(httptest.NewRequest(http.MethodGet, "/broken", nil))
	lines := f.lines(t)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.EqualValues(t, 500, lines[0]["status"])
	assert.Equal(t, "db down", lines[0]["error"])
}

func TestAccessLog_StatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.WithStack(domainerrors.ErrShiftNotFound), http.StatusNotFound},
		{errors.Wrap(domainerrors.ErrUnauthenticated, "missing header"), http.StatusUnauthorized},
		{echo.NewHTTPError(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForError(tt.err), tt.err.Error())
	}
}
