// Package logger owns the process-wide slog logger. A one-shot CLI logs to
// stderr; debug raises the level and adds source locations.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	Debug  bool
	Output io.Writer // defaults to stderr
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func Setup(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	}))

	mu.Lock()
	global = l
	mu.Unlock()
	return l
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
