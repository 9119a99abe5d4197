package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"staffing/config"
	deliverycontext "staffing/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// gormSlogLogger routes GORM output through the request-scoped slog logger so
// query lines share request_id and user_id with the access log.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg.Env.Debug {
		level = logger.Info
	}

	var slow time.Duration
	if cfg.Database != nil {
		slow = cfg.Database.SlowQueryThreshold
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slow,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min {
		return
	}
	l.from(ctx).LogAttrs(ctx, level, "GORM "+level.String(),
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case l.level >= logger.Error && isReportable(err):
		l.trace(ctx, slog.LevelError, "GORM query failed", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
	case l.level >= logger.Warn && l.slowThreshold > 0 && elapsed > l.slowThreshold:
		l.trace(ctx, slog.LevelWarn, "GORM slow query", sqlAndRowsFn, elapsed, slog.Duration("slow_threshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.trace(ctx, slog.LevelInfo, "GORM query", sqlAndRowsFn, elapsed)
	}
}

func (l *gormSlogLogger) trace(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
		slog.String("caller", utils.FileWithLineNum()),
	}, extra...)

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, l.logger)
}

// isReportable drops errors the callers already translate: a missing row
// becomes a domain NotFound and a cancelled context means the client left.
func isReportable(err error) bool {
	return err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) &&
		!errors.Is(err, context.Canceled)
}
