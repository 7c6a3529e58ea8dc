// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	logLevel      = new(slog.LevelVar)
)

// Init configures the package logger. It may be called again to reconfigure
// (tests do this); the last call wins.
func Init(cfg Config, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	cfg.process()
	logLevel.Set(cfg.level)

	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.SourceKey:
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			case slog.TimeKey:
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	base := slog.NewTextHandler(output, &opts)

	mu.Lock()
	defaultLogger = slog.New(newFilteringHandler(base, &cfg))
	mu.Unlock()

	// PC=0 keeps the init message clear of the source filters.
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
	r.AddAttrs(slog.String("level", cfg.level.String()))
	_ = base.Handle(context.Background(), r)
}

// OpenOutput opens the log destination named by path. "-" and "" mean
// stderr; the returned closer is then a no-op.
func OpenOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	return f, f.Close, nil
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) { logLevel.Set(level) }

// logAtLevel builds a record for the caller of the exported wrapper so
// source info and file filters point at the real call site.
func logAtLevel(level slog.Level, tag string, format string, args ...any) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// --- Wrapper Functions ---

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...any) { logAtLevel(slog.LevelDebug, "", format, args...) }

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...any) { logAtLevel(slog.LevelInfo, "", format, args...) }

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...any) { logAtLevel(slog.LevelWarn, "", format, args...) }

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...any) { logAtLevel(slog.LevelError, "", format, args...) }

// DebugTagf logs a debug message carrying a filterable tag.
func DebugTagf(tag, format string, args ...any) { logAtLevel(slog.LevelDebug, tag, format, args...) }

// InfoTagf logs an info message carrying a filterable tag.
func InfoTagf(tag, format string, args ...any) { logAtLevel(slog.LevelInfo, tag, format, args...) }

// WarnTagf logs a warning carrying a filterable tag.
func WarnTagf(tag, format string, args ...any) { logAtLevel(slog.LevelWarn, tag, format, args...) }

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...any) {
	logAtLevel(slog.LevelError, "", format, args...)
	os.Exit(1)
}

// Get returns the configured logger.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}
