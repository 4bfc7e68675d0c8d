package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
)

// attributes folded into the message line instead of the trailing key=value list
var internalAttrs = map[string]bool{
	"type":   true,
	"name":   true,
	"status": true,
	"error":  true,
}

type Options struct {
	Level     slog.Level
	AddSource bool
	NoColor   bool
}

type CustomHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	opts   Options
	attrs  []slog.Attr
	groups []string
}

func NewHandler(w io.Writer, opts Options) *CustomHandler {
	if w == nil {
		w = os.Stdout
	}
	return &CustomHandler{
		mu:   &sync.Mutex{},
		out:  w,
		opts: opts,
	}
}

// ParseLevel maps a config string to a level; unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	levelColor, levelText := h.level(r.Level)

	var (
		logType = TypeSystem
		name    string
		status  string
		errText string
		extra   strings.Builder
	)
	collect := func(a slog.Attr) bool {
		switch a.Key {
		case "type":
			logType = typeOf(a.Value.String())
		case "name":
			name = a.Value.String()
		case "status":
			status = a.Value.String()
		case "error":
			errText = fmt.Sprintf("%v", a.Value.Any())
		}
		if !internalAttrs[a.Key] {
			key := a.Key
			if len(h.groups) > 0 {
				key = strings.Join(h.groups, ".") + "." + key
			}
			fmt.Fprintf(&extra, " %s=%v", key, a.Value)
		}
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	message := r.Message
	if name != "" {
		message = fmt.Sprintf("%s [%s]", message, name)
	}
	if errText != "" {
		message = fmt.Sprintf("%s: %s", message, errText)
	}
	if status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}
	if h.opts.AddSource && r.PC != 0 {
		if src := source(r.PC); src != "" {
			message = fmt.Sprintf("%s (%s)", message, src)
		}
	}

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	white, reset := colorWhite, colorReset
	if h.opts.NoColor {
		white, reset, levelColor = "", "", ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[CardSwap] [%s] [%s%s%s] [%s] %s%s%s\n",
		white,
		ts.Format("15:04:05"),
		levelColor,
		levelText,
		white,
		logType,
		message,
		extra.String(),
		reset,
	)
	return err
}

func (h *CustomHandler) level(l slog.Level) (string, string) {
	switch {
	case l >= slog.LevelError:
		return colorRed, "ERROR"
	case l >= slog.LevelWarn:
		return colorYellow, "WARN"
	case l >= slog.LevelInfo:
		return colorGreen, "INFO"
	}
	return colorPurple, "DEBUG"
}

func typeOf(s string) LogType {
	switch s {
	case "cmd":
		return TypeCommand
	case "db":
		return TypeDB
	case "error":
		return TypeError
	}
	return TypeSystem
}
