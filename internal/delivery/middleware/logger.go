package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"staffing/config"
	deliverycontext "staffing/internal/delivery/context"
	domainerrors "staffing/internal/domain/errors"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoggerMiddleware writes one access line per request through the request-scoped
// logger, so each line carries service, request_id and, once authenticated, user_id.
// Server errors are always logged; everything else only in debug.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			// The central error handler writes after us; log the status it will send.
			status = statusForError(err)
		}

		if m.debug || status >= 500 {
			m.logRequest(c, status, time.Since(start), err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	ctx := req.Context()
	deliverycontext.Logger(ctx, m.logger).LogAttrs(ctx, level, "HTTP request", attrs...)
}

func statusForError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
