package trail

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestOverflowLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	rb, _ := newTestRing(4)
	rb.Append(verts(0, 8))

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "count=8") {
		t.Fatalf("log output = %q", out)
	}
}

func TestDefaultLoggerSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger should be disabled")
	}
}
