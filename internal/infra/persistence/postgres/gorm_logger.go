package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TimDev9492/chad-website/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output through slog. Outside debug mode bind values are left out
// of the logged SQL, they are mostly names, birth dates and phone numbers.
type gormLogger struct {
	logger     *slog.Logger
	level      logger.LogLevel
	slowAfter  time.Duration
	withParams bool
}

var (
	_ logger.Interface  = (*gormLogger)(nil)
	_ gorm.ParamsFilter = (*gormLogger)(nil)
)

func newGormLogger(base *slog.Logger, debug bool) *gormLogger {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &gormLogger{
		logger:     base,
		level:      level,
		slowAfter:  slowQueryThreshold,
		withParams: debug,
	}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

// ParamsFilter drops bind values from logged SQL unless debug logging is on.
func (l *gormLogger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if l.withParams {
		return sql, params
	}

	return sql, nil
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.LogAttrs(ctx, slog.LevelError, "GORM query failed",
			append(queryAttrs(fc, elapsed), slog.String("error", err.Error()))...)
	case l.slowAfter > 0 && elapsed > l.slowAfter && l.level >= logger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "GORM slow query",
			append(queryAttrs(fc, elapsed), slog.Duration("threshold", l.slowAfter))...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "GORM query", queryAttrs(fc, elapsed)...)
	}
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
