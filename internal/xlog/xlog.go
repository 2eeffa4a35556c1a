// Package xlog is a thin wrapper over zerolog, giving the rest of the
// module a small, consistent logging surface instead of importing
// zerolog directly everywhere. Its only user is the pool package, which
// logs admission diagnostics through it; nothing on the mutator hot path
// logs at all.
package xlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with the handful of calls this module
// needs.
type Logger struct {
	z zerolog.Logger
}

// Config selects the wrapped logger's destination and rendering.
type Config struct {
	// Output defaults to os.Stderr.
	Output io.Writer
	// Pretty selects zerolog's human-readable console writer instead of
	// the default structured JSON encoding.
	Pretty bool
	// Level's unset zero value is zerolog.DebugLevel, the most verbose
	// setting; callers that want InfoLevel or quieter must say so.
	Level zerolog.Level
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).With().Timestamp().Logger().Level(cfg.Level)
	return &Logger{z: z}
}

// Nop returns a Logger that discards everything, for tests and callers
// that don't want diagnostics.
func Nop() *Logger {
	return &Logger{z: zerolog.Nop()}
}

// Debugf logs a debug-level message with key/value pairs.
func (l *Logger) Debugf(msg string, kv ...any) { l.event(l.z.Debug(), msg, kv) }

// Infof logs an info-level message with key/value pairs.
func (l *Logger) Infof(msg string, kv ...any) { l.event(l.z.Info(), msg, kv) }

// Warnf logs a warn-level message with key/value pairs.
func (l *Logger) Warnf(msg string, kv ...any) { l.event(l.z.Warn(), msg, kv) }

func (l *Logger) event(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}
