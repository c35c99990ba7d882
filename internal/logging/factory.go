package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the backend, level and output format of New.
type Options struct {
	Backend string // "slog" or "zerolog"
	Level   string // debug, info, warn, error
	Format  string // text or json
	Output  io.Writer
}

// New builds a Logger for opts. Unknown backends fall back to slog and
// unknown levels to info.
func New(opts Options) Logger {
	if strings.EqualFold(opts.Backend, "zerolog") {
		var w io.Writer = opts.Output
		if !strings.EqualFold(opts.Format, "json") {
			w = zerolog.ConsoleWriter{Out: opts.Output, TimeFormat: time.RFC3339, NoColor: true}
		}
		l := zerolog.New(w).Level(zerologLevel(opts.Level)).With().Timestamp().Logger()
		return NewZerologLogger(l)
	}

	ho := &slog.HandlerOptions{Level: slogLevel(opts.Level)}
	var h slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		h = slog.NewJSONHandler(opts.Output, ho)
	} else {
		h = slog.NewTextHandler(opts.Output, ho)
	}
	return FromSlog(slog.New(h))
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zerologLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return l
}
