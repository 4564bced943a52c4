package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ticketdesk/config"
	deliverycontext "ticketdesk/internal/delivery/context"
	"ticketdesk/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultSlowQueryThreshold = 200 * time.Millisecond

	// redactedValue replaces bind values that must never reach the logs.
	redactedValue = "[redacted]"
)

// secretPrefixes match bind values holding credential material, namely the
// PHC strings written to users.password_hash.
var secretPrefixes = []string{"$argon2id$", "$argon2i$", "$argon2d$"}

// queryLogger routes gorm's statement tracing into the request logger.
// Outside debug mode statements are logged with placeholders only. In debug
// mode bind values are inlined, except password hashes.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	inlineParams  bool
}

var (
	_ logger.Interface  = (*queryLogger)(nil)
	_ gorm.ParamsFilter = (*queryLogger)(nil)
)

func newQueryLogger(baseLogger *slog.Logger, cfg *config.Config) *queryLogger {
	debug := cfg != nil && cfg.Env.Debug

	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &queryLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultSlowQueryThreshold,
		inlineParams:  debug,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "Store message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// ParamsFilter decides which bind values gorm may render into the traced SQL.
func (l *queryLogger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if !l.inlineParams {
		return sql, nil
	}

	return sql, redactParams(params)
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
// A missing row is an expected outcome for lookups and is not logged as a failure.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(l.statementAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.log(ctx).LogAttrs(ctx, slog.LevelError, "Store statement failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(l.statementAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow store statement", attrs...)
	case l.level >= logger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelDebug, "Store statement", l.statementAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *queryLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *queryLogger) statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

func redactParams(params []any) []any {
	out := make([]any, len(params))
	for i, param := range params {
		out[i] = param
		if s, ok := param.(string); ok && isSecret(s) {
			out[i] = redactedValue
		}
	}

	return out
}

func isSecret(value string) bool {
	for _, prefix := range secretPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}

	return false
}
