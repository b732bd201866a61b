// Package logging builds the structured logger shared by every command.
// Output goes to a rotating file so that command output and the terminal UI
// are never interleaved with log lines.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Paintersrp/vaultnav/internal/config"
)

// Logger wraps slog with the closer of its underlying sink.
type Logger struct {
	*slog.Logger
	closer io.Closer
	perf   bool
}

// New opens the configured log file. An empty file path discards output.
func New(cfg config.LogConfig) (*Logger, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer
	)

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    16,
			MaxBackups: 3,
			MaxAge:     28,
		}
		w, closer = lj, lj
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})
	return &Logger{Logger: slog.New(handler), closer: closer, perf: cfg.Perf}, nil
}

// Discard returns a logger that drops everything. Tests and library callers
// without a configured sink use it.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// NewWriter logs to w, mainly for tests that inspect output.
func NewWriter(w io.Writer, level string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &Logger{Logger: slog.New(handler), perf: true}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Timer measures a single named operation.
type Timer struct {
	logger *Logger
	name   string
	start  time.Time
}

// Start begins timing name. Call Stop when the operation finishes.
func (l *Logger) Start(name string) *Timer {
	return &Timer{logger: l, name: name, start: time.Now()}
}

// Stop logs the elapsed time with any extra attributes and returns it.
// Timings are logged at debug unless perf logging is enabled.
func (t *Timer) Stop(args ...any) time.Duration {
	elapsed := time.Since(t.start)
	if t.logger == nil {
		return elapsed
	}

	level := slog.LevelDebug
	if t.logger.perf {
		level = slog.LevelInfo
	}

	attrs := append([]any{"op", t.name, "elapsed_ms", elapsed.Milliseconds()}, args...)
	t.logger.Log(context.Background(), level, "perf", attrs...)
	return elapsed
}
