package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// LevelCritical sits above slog.LevelError and is printed as CRITICAL.
const LevelCritical = slog.Level(12)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Critical(msg string, args ...any)
	// BusinessError logs an expected failure (bad input, a remote service
	// refusing) at warn level. A nil err logs nothing.
	BusinessError(msg string, err error, args ...any)
	// InternalError logs an unexpected failure at error level. A nil err
	// logs nothing.
	InternalError(msg string, err error, args ...any)
	With(args ...any) Logger
	// StdLogger adapts the logger for APIs that take a *log.Logger or a
	// Printf writer (chi's request logger, http.Server, gorm).
	StdLogger(level slog.Level) *log.Logger
}

type structured struct {
	sl *slog.Logger
}

// NewFromEnv reads LOG_LEVEL and LOG_FORMAT. Without LOG_LEVEL, ENV=development
// logs at debug and everything else at info; the format defaults to json.
func NewFromEnv() Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"), normalize(os.Getenv("ENV")))
	return New(os.Stdout, level, parseFormat(os.Getenv("LOG_FORMAT"))).With("service", "aurora")
}

func New(w io.Writer, level slog.Level, format string) Logger {
	return &structured{sl: slog.New(newHandler(w, level, format))}
}

// Nop discards everything. Intended for tests and the CLI's quiet mode.
func Nop() Logger {
	return New(io.Discard, LevelCritical+1, "text")
}

func newHandler(w io.Writer, level slog.Level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: nameCritical}
	if normalize(format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func (s *structured) Debug(msg string, args ...any) { s.sl.Debug(msg, args...) }

func (s *structured) Info(msg string, args ...any) { s.sl.Info(msg, args...) }

func (s *structured) Warn(msg string, args ...any) { s.sl.Warn(msg, args...) }

func (s *structured) Error(msg string, args ...any) { s.sl.Error(msg, args...) }

func (s *structured) Critical(msg string, args ...any) {
	s.sl.Log(context.Background(), LevelCritical, msg, args...)
}

func (s *structured) BusinessError(msg string, err error, args ...any) {
	s.logErr(slog.LevelWarn, msg, err, args)
}

func (s *structured) InternalError(msg string, err error, args ...any) {
	s.logErr(slog.LevelError, msg, err, args)
}

func (s *structured) logErr(level slog.Level, msg string, err error, args []any) {
	if err == nil {
		return
	}
	s.sl.Log(context.Background(), level, msg, append([]any{"err", err}, args...)...)
}

func (s *structured) With(args ...any) Logger {
	return &structured{sl: s.sl.With(args...)}
}

func (s *structured) StdLogger(level slog.Level) *log.Logger {
	return slog.NewLogLogger(s.sl.Handler(), level)
}

var levelNames = map[string]slog.Level{
	"debug":    slog.LevelDebug,
	"info":     slog.LevelInfo,
	"warn":     slog.LevelWarn,
	"warning":  slog.LevelWarn,
	"error":    slog.LevelError,
	"critical": LevelCritical,
	"fatal":    LevelCritical,
}

func parseLevel(value, env string) slog.Level {
	if level, ok := levelNames[normalize(value)]; ok {
		return level
	}
	if env == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func parseFormat(value string) string {
	if normalize(value) == "text" {
		return "text"
	}
	return "json"
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func nameCritical(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey {
		return attr
	}
	if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelCritical {
		attr.Value = slog.StringValue("CRITICAL")
	}
	return attr
}
