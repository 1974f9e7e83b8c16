package momentdist

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with momentdist-specific context.
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

// WithDraws adds a draws (pair count) field to the logger.
func (l *Logger) WithDraws(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("draws", n),
	}
}

// LogPairError logs a failed distance evaluation within a batch.
func (l *Logger) LogPairError(ctx context.Context, pair int, err error) {
	l.ErrorContext(ctx, "distance evaluation failed",
		"pair", pair,
		"error", err,
	)
}

// LogBatch logs a completed batch evaluation.
func (l *Logger) LogBatch(ctx context.Context, pairs int) {
	l.DebugContext(ctx, "batch evaluation completed",
		"pairs", pairs,
	)
}
