// Package log is a small leveled logger with request-scoped context fields.
// Lines are written as JSON through zerolog.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
)

// callerSkip is the number of frames between runtime.Caller in emit and the
// code that called a Logger method.
const callerSkip = 3

// Logger writes structured log lines at or above its minimum level.
type Logger struct {
	zl    zerolog.Logger
	level Level
}

// New creates a logger writing JSON lines to w.
func New(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	zl := zerolog.New(w).Level(level.zerolog()).With().Timestamp().Logger()
	return &Logger{zl: zl, level: level}
}

// Level returns the minimum level of the logger.
func (l *Logger) Level() Level {
	return l.level
}

// With creates a child logger that adds the given fields to every line.
func (l *Logger) With(keysAndValues ...any) *Logger {
	zc := l.zl.With()
	eachPair(keysAndValues, func(key string, value any) {
		zc = zc.Interface(key, value)
	})
	return &Logger{zl: zc.Logger(), level: l.level}
}

func (l *Logger) emit(skip int, level Level, ctx context.Context, msg string, keysAndValues ...any) {
	if !l.level.Enables(level) {
		return
	}

	ev := l.zl.WithLevel(level.zerolog())
	if ev == nil {
		return
	}
	if caller := getCaller(skip); caller != "" {
		ev = ev.Str("caller", caller)
	}

	if ctx != nil {
		if id := RequestIDFromContext(ctx); id != "" {
			ev = ev.Str("request_id", id)
		}
		for k, v := range FieldsFromContext(ctx) {
			ev = addField(ev, k, v)
		}
	}

	eachPair(keysAndValues, func(key string, value any) {
		ev = addField(ev, key, value)
	})

	ev.Msg(msg)
}

func addField(ev *zerolog.Event, key string, value any) *zerolog.Event {
	if err, ok := value.(error); ok {
		return ev.AnErr(key, err)
	}
	return ev.Interface(key, value)
}

// getCaller returns file:line of the frame skip levels up.
func getCaller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			file = file[i+1:]
			break
		}
	}
	return fmt.Sprintf("%s:%d", file, line)
}

func (l *Logger) Trace(msg string, keysAndValues ...any) {
	l.emit(callerSkip, Trace, nil, msg, keysAndValues...)
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.emit(callerSkip, Debug, nil, msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.emit(callerSkip, Info, nil, msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.emit(callerSkip, Warn, nil, msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.emit(callerSkip, Error, nil, msg, keysAndValues...)
}

// Fatal logs at Fatal level. It does not exit; that's the caller's responsibility.
func (l *Logger) Fatal(msg string, keysAndValues ...any) {
	l.emit(callerSkip, Fatal, nil, msg, keysAndValues...)
}

func (l *Logger) TraceCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(callerSkip, Trace, ctx, msg, keysAndValues...)
}

func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(callerSkip, Debug, ctx, msg, keysAndValues...)
}

func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(callerSkip, Info, ctx, msg, keysAndValues...)
}

func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(callerSkip, Warn, ctx, msg, keysAndValues...)
}

func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(callerSkip, Error, ctx, msg, keysAndValues...)
}

func (l *Logger) FatalCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(callerSkip, Fatal, ctx, msg, keysAndValues...)
}

// --- Global Logger ---

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
	nopLogger    = &Logger{zl: zerolog.Nop(), level: Fatal + 1}
)

// SetDefault sets the global logger.
func SetDefault(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// Default returns the global logger, or a no-op logger if none was set.
func Default() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()

	if l == nil {
		return nopLogger
	}
	return l
}

func GlobalDebug(msg string, keysAndValues ...any) {
	Default().emit(callerSkip, Debug, nil, msg, keysAndValues...)
}

func GlobalInfo(msg string, keysAndValues ...any) {
	Default().emit(callerSkip, Info, nil, msg, keysAndValues...)
}

func GlobalWarn(msg string, keysAndValues ...any) {
	Default().emit(callerSkip, Warn, nil, msg, keysAndValues...)
}

func GlobalError(msg string, keysAndValues ...any) {
	Default().emit(callerSkip, Error, nil, msg, keysAndValues...)
}

func GlobalFatal(msg string, keysAndValues ...any) {
	Default().emit(callerSkip, Fatal, nil, msg, keysAndValues...)
}

func GlobalDebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().emit(callerSkip, Debug, ctx, msg, keysAndValues...)
}

func GlobalInfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().emit(callerSkip, Info, ctx, msg, keysAndValues...)
}

func GlobalWarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().emit(callerSkip, Warn, ctx, msg, keysAndValues...)
}

func GlobalErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().emit(callerSkip, Error, ctx, msg, keysAndValues...)
}
