package logging

import (
	"context"
	"log/slog"
)

// slogLogger routes every level through one slog.Logger.Log call, so the
// handler's level filter and the caller's context apply uniformly.
type slogLogger struct {
	base *slog.Logger
}

// FromSlog wraps l as a Logger. A nil l means slog.Default(), resolved at
// wrap time.
func FromSlog(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{base: l}
}

func (s slogLogger) emit(ctx context.Context, level slog.Level, msg string, args []any) {
	s.base.Log(ctx, level, msg, args...)
}

func (s slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelDebug, msg, args)
}

func (s slogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelInfo, msg, args)
}

func (s slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelWarn, msg, args)
}

func (s slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelError, msg, args)
}

func (s slogLogger) With(args ...any) Logger {
	return slogLogger{base: s.base.With(args...)}
}

var discard = FromSlog(slog.New(slog.DiscardHandler))

// Discard is the Logger used when nobody configured one.
func Discard() Logger { return discard }
