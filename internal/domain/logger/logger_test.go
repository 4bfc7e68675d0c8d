package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	applog "github.com/cardswap/matchmaker/cardswap/logger"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(applog.NewHandler(&buf, applog.Options{Level: slog.LevelDebug, NoColor: true})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestQueryLogger_Done(t *testing.T) {
	buf := captureDefault(t)

	if err := NewQueryLogger("wishlists", "GetByUserID", int64(2)).Done(nil, 4); err != nil {
		t.Fatalf("Done(nil) = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[DEBUG]", "[DB]", "Query executed", "query=wishlists.GetByUserID", "rows=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	buf.Reset()
	boom := errors.New("boom")
	if err := NewQueryLogger("user_cards", "GetListed").Done(boom, 0); !errors.Is(err, boom) {
		t.Fatalf("Done(boom) = %v, want boom", err)
	}
	out = buf.String()
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "Query failed: boom") || strings.Contains(out, "rows=") {
		t.Errorf("output = %q", out)
	}
}
