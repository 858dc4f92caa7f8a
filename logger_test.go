package sketch

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// TestLoggerDefaultSilent tests that the default logger discards records
// without formatting them.
func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil) // ensure default
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil, want non-nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger enabled at error level, want disabled")
	}
}

// TestSetLogger tests installing and restoring the package logger.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))

	SetLogger(custom)
	defer SetLogger(nil)

	if Logger() != custom {
		t.Error("Logger() did not return the installed logger")
	}
	Logger().Info("hello", slog.Int("n", 1))
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output %q does not contain message", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("SetLogger(nil) did not restore the silent default")
	}
}
