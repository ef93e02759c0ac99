// Package logging configures the process-wide slog logger.
//
// Console output goes to the writer passed to Init (stderr for scripted
// commands, io.Discard while the TUI owns the terminal). Setting a file adds
// a rotated JSON log alongside it.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

const (
	EnvLevel  = "FOODLIST_LOG_LEVEL"
	EnvFormat = "FOODLIST_LOG_FORMAT"
	EnvFile   = "FOODLIST_LOG_FILE"
)

type Options struct {
	Level  string // debug|info|warn|error
	Format string // text|json
	File   string
}

var (
	mu      sync.RWMutex
	current *slog.Logger
	closer  io.Closer
)

func FromEnv() Options {
	return Options{
		Level:  envOr(EnvLevel, "info"),
		Format: envOr(EnvFormat, "text"),
		File:   os.Getenv(EnvFile),
	}
}

// Init builds the logger, installs it as slog.Default and returns it.
func Init(opts Options, console io.Writer) *slog.Logger {
	lvl := ParseLevel(opts.Level)
	hopts := &slog.HandlerOptions{Level: lvl}

	var handlers []slog.Handler
	if console != nil && console != io.Discard {
		if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
			handlers = append(handlers, slog.NewJSONHandler(console, hopts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(console, hopts))
		}
	}

	var fileCloser io.Closer
	if f := strings.TrimSpace(opts.File); f != "" {
		w := &lj.Logger{Filename: f, MaxSize: 5, MaxBackups: 3, MaxAge: 14}
		handlers = append(handlers, slog.NewJSONHandler(w, hopts))
		fileCloser = w
	}

	var h slog.Handler
	switch len(handlers) {
	case 0:
		h = slog.DiscardHandler
	case 1:
		h = handlers[0]
	default:
		h = fanout(handlers)
	}
	l := slog.New(h).With(slog.String("app", "foodlist"))

	mu.Lock()
	if closer != nil {
		_ = closer.Close()
	}
	current = l
	closer = fileCloser
	mu.Unlock()

	slog.SetDefault(l)
	return l
}

// L returns the configured logger, initializing from the environment with
// stderr output on first use.
func L() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}
	return Init(FromEnv(), os.Stderr)
}

func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, lvl slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, lvl) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
