package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler and drops records rejected
// by the package, file or tag filters.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// sourceOf resolves the package directory and file name of the record's caller.
func sourceOf(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

func tagOf(r slog.Record) (tag string, ok bool) {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag, ok = a.Value.String(), true
			return false
		}
		return true
	})
	return tag, ok
}

// Handle applies the filters before passing the record on.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	if pkg, file, ok := sourceOf(r); ok {
		if !h.cfg.packages.allows(pkg) {
			h.trace("package %q filtered: %s", pkg, r.Message)
			return nil
		}
		if !h.cfg.files.allows(file) {
			h.trace("file %q filtered: %s", file, r.Message)
			return nil
		}
	}

	tag, tagged := tagOf(r)
	switch {
	case tagged && !h.cfg.tags.allows(tag):
		h.trace("tag %q filtered: %s", tag, r.Message)
		return nil
	case !tagged && h.cfg.tags.enabled != nil:
		// Specific tags requested; untagged messages are noise.
		h.trace("untagged message filtered: %s", r.Message)
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) trace(format string, args ...any) {
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
	}
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}
