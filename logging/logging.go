// Package logging wraps github.com/rs/zerolog for structured, leveled
// logging, using the same flat key/value With-style call shape as
// slog.Logger so call sites read identically to one.
package logging

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with the same With-style tagging used
// throughout the solver's session and HTTP layers.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger with JSON output to stderr, level from LOG_LEVEL
// (debug/info/warn/error, default info).
func New() *Logger {
	zerolog.SetGlobalLevel(levelFromEnv())
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTag returns a new Logger with a "tag" field set, used to correlate
// every log line for one session or stream.
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{zl: l.zl.With().Str("tag", tag).Logger()}
}

// withFields turns a flat key/value varargs list, e.g. log.Info("msg", "k",
// v), into zerolog context.
func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, _ := args[i].(string)
		e = e.Interface(key, args[i+1])
	}
	return e
}

func (l *Logger) Info(msg string, args ...any)  { withFields(l.zl.Info(), args).Msg(msg) }
func (l *Logger) Warn(msg string, args ...any)  { withFields(l.zl.Warn(), args).Msg(msg) }
func (l *Logger) Error(msg string, args ...any) { withFields(l.zl.Error(), args).Msg(msg) }
func (l *Logger) Debug(msg string, args ...any) { withFields(l.zl.Debug(), args).Msg(msg) }

// InfoCtx logs at info level with ctx attached to the event; zerolog
// exposes ctx to hooks but writes no fields from it.
func (l *Logger) InfoCtx(ctx context.Context, msg string, args ...any) {
	withFields(l.zl.Info().Ctx(ctx), args).Msg(msg)
}
