// Package log provides zerolog based logging bound to a context.
package log

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper over zerolog.Logger with printf-style helpers.
type Logger struct {
	zl *zerolog.Logger
}

// AttrOption adds a field to the logger context.
type AttrOption func(l zerolog.Context) zerolog.Context

// Scope sets the component name.
func Scope(s string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("s", s)
	}
}

// Op sets the operation name.
func Op(op string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("op", op)
	}
}

func Int(key string, v int) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int(key, v)
	}
}

func Int64(key string, v int64) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int64(key, v)
	}
}

func Err(err error) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Err(err)
	}
}

// InitGlobals configures the global logger and returns it.
func InitGlobals(level zerolog.Level, json, noColor bool) *zerolog.Logger {
	var w io.Writer = os.Stderr
	if !json {
		w = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.NoColor = noColor
			w.TimeFormat = time.DateTime
		})
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &l

	return &l
}

// Ctx returns the logger bound to ctx, or the fallback logger.
func Ctx(ctx context.Context) *Logger {
	return &Logger{zl: zerolog.Ctx(ctx)}
}

// New returns a logger derived from the fallback logger with the scope set.
func New(scope string) *Logger {
	return Ctx(context.Background()).With(Scope(scope))
}

// With returns a child logger with the attributes added.
func (l *Logger) With(opts ...AttrOption) *Logger {
	c := l.zl.With()
	for _, opt := range opts {
		c = opt(c)
	}

	zl := c.Logger()

	return &Logger{zl: &zl}
}

// WithContext stores the logger in ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.zl.WithContext(ctx)
}

func (l *Logger) Trace(msg string) { l.zl.Trace().Msg(msg) }

func (l *Logger) Tracef(msg string, args ...any) { l.zl.Trace().Msgf(msg, args...) }

func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }

func (l *Logger) Debugf(msg string, args ...any) { l.zl.Debug().Msgf(msg, args...) }

func (l *Logger) Info(msg string) { l.zl.Info().Msg(msg) }

func (l *Logger) Infof(msg string, args ...any) { l.zl.Info().Msgf(msg, args...) }

func (l *Logger) Warn(msg string) { l.zl.Warn().Msg(msg) }

func (l *Logger) Warnf(msg string, args ...any) { l.zl.Warn().Msgf(msg, args...) }

func (l *Logger) Error(err error, msg string) { l.zl.Error().Err(err).Msg(msg) }

func (l *Logger) Errorf(err error, msg string, args ...any) {
	l.zl.Error().Err(err).Msgf(msg, args...)
}
