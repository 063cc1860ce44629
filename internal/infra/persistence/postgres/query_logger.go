package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger sends gorm's output to slog, preferring the request-scoped logger so each
// query carries the request ID of the shell call that caused it.
type queryLogger struct {
	logger *slog.Logger
	level  gormlogger.LogLevel
	slow   time.Duration
}

// newQueryLogger logs every statement in debug mode, otherwise only failures and slow queries.
func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{logger: base, level: level, slow: slowQueryThreshold}
}

func (q *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *q
	clone.level = level

	return &clone
}

func (q *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	q.message(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (q *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	q.message(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (q *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	q.message(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

// Trace reports one executed statement. A missing row is an expected outcome for the cart
// lookups and a cancelled statement belongs to a shopper who left, so neither is an error.
func (q *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if q.logger == nil || q.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && errors.IsCanceled(err):
		q.statement(ctx, slog.LevelDebug, "Query abandoned", fc, elapsed, slog.String("error", err.Error()))
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && q.level >= gormlogger.Error:
		q.statement(ctx, slog.LevelError, "Query failed", fc, elapsed, slog.String("error", err.Error()))
	case q.slow > 0 && elapsed > q.slow && q.level >= gormlogger.Warn:
		q.statement(ctx, slog.LevelWarn, "Slow query", fc, elapsed, slog.Duration("threshold", q.slow))
	case q.level >= gormlogger.Info:
		q.statement(ctx, slog.LevelInfo, "Query", fc, elapsed)
	}
}

func (q *queryLogger) message(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if q.logger == nil || q.level < threshold {
		return
	}

	q.log(ctx).LogAttrs(ctx, level, "Database", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (q *queryLogger) statement(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	q.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (q *queryLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, q.logger)
}
