package logger

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Interface is the structured logger handed to services, use cases and
// handlers. Arguments are alternating key/value pairs.
type Interface interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// With returns a child logger that always carries the given pairs.
	With(keysAndValues ...any) Interface
	// Component tags every record with component=name.
	Component(name string) Interface
}

type slogAdapter struct {
	base *slog.Logger
}

// NewLogger wraps the process-wide logger configured by Init.
func NewLogger() Interface {
	return &slogAdapter{base: Get()}
}

// FromSlog wraps an existing slog logger.
func FromSlog(l *slog.Logger) Interface {
	return &slogAdapter{base: l}
}

// NewNopLogger discards every record.
func NewNopLogger() Interface {
	return &slogAdapter{base: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// emit records the caller of the exported level method as the source.
func (a *slogAdapter) emit(level slog.Level, msg string, kv []any) {
	ctx := context.Background()
	if !a.base.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // runtime.Callers, emit, Infow and friends
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(kv...)
	_ = a.base.Handler().Handle(ctx, r)
}

func (a *slogAdapter) Debugw(msg string, keysAndValues ...any) {
	a.emit(slog.LevelDebug, msg, keysAndValues)
}

func (a *slogAdapter) Infow(msg string, keysAndValues ...any) {
	a.emit(slog.LevelInfo, msg, keysAndValues)
}

func (a *slogAdapter) Warnw(msg string, keysAndValues ...any) {
	a.emit(slog.LevelWarn, msg, keysAndValues)
}

func (a *slogAdapter) Errorw(msg string, keysAndValues ...any) {
	a.emit(slog.LevelError, msg, keysAndValues)
}

func (a *slogAdapter) With(keysAndValues ...any) Interface {
	return &slogAdapter{base: a.base.With(keysAndValues...)}
}

func (a *slogAdapter) Component(name string) Interface {
	return a.With("component", name)
}
