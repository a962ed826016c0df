package pathgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pathgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogSolve logs a point-to-point solve.
func (l *Logger) LogSolve(start, end uint64, status Status, pathLen int) {
	l.Debug("solve completed",
		"start", start,
		"end", end,
		"status", status.String(),
		"path_len", pathLen,
	)
}

// LogSolveWithinBudget logs a bounded-cost frontier expansion.
func (l *Logger) LogSolveWithinBudget(start uint64, maxCost float32, found int) {
	l.Debug("budget solve completed",
		"start", start,
		"max_cost", maxCost,
		"found", found,
	)
}

// LogReset logs an engine reset.
func (l *Logger) LogReset(nodesDropped uint64) {
	l.Debug("engine reset",
		"nodes_dropped", nodesDropped,
	)
}
