package logger

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Setup installs the custom handler as the default logger. Every record
// carries a run_id so lines from one CLI invocation can be grepped together.
func Setup(w io.Writer, opts Options) string {
	runID := uuid.NewString()
	slog.SetDefault(slog.New(NewHandler(w, opts)).With(slog.String("run_id", runID)))
	return runID
}

// LogCommand logs command execution
func LogCommand(name string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "cmd"),
		slog.String("name", name),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Command failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Info("Command executed", attrs...)
}

// LogQuery logs a database statement; failures at error level, the rest at debug.
func LogQuery(query string, duration time.Duration, err error, extra ...any) {
	attrs := append([]any{
		slog.String("type", "db"),
		slog.String("query", query),
		slog.Duration("took", duration),
	}, extra...)

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Debug("Query executed", attrs...)
}

func LogSystem(msg string, attrs ...any) {
	slog.Info(msg, append([]any{slog.String("type", "sys")}, attrs...)...)
}

func LogError(msg string, err error, attrs ...any) {
	base := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(base, attrs...)...)
}
