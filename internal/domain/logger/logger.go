package logger

import (
	"log/slog"
	"time"

	applog "github.com/cardswap/matchmaker/cardswap/logger"
)

// QueryLogger times one repository read and reports it on the db log channel.
type QueryLogger struct {
	Repository string
	Operation  string
	Args       []any
	start      time.Time
}

func NewQueryLogger(repository, operation string, args ...any) *QueryLogger {
	return &QueryLogger{
		Repository: repository,
		Operation:  operation,
		Args:       args,
		start:      time.Now(),
	}
}

// Done logs the outcome and returns err unchanged so it can end a return statement.
func (l *QueryLogger) Done(err error, rows int) error {
	attrs := []any{slog.String("operation", l.Operation)}
	if len(l.Args) > 0 {
		attrs = append(attrs, slog.Any("args", l.Args))
	}
	if err == nil {
		attrs = append(attrs, slog.Int("rows", rows))
	}
	applog.LogQuery(l.Repository+"."+l.Operation, time.Since(l.start), err, attrs...)
	return err
}
