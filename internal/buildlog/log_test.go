package buildlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("default logger should not be enabled at any level")
	}
}

func TestNewLevels(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, false, false)
	l.Debug("hidden")
	l.Warn("shown", "part", "lid")
	if strings.Contains(b.String(), "hidden") {
		t.Errorf("debug record leaked at default level: %q", b.String())
	}
	if !strings.Contains(b.String(), "part=lid") {
		t.Errorf("warn record missing: %q", b.String())
	}

	b.Reset()
	New(&b, false, true).Debug("detail")
	if !strings.Contains(b.String(), "detail") {
		t.Errorf("verbose logger dropped debug: %q", b.String())
	}

	b.Reset()
	New(&b, true, true).Error("boom")
	if b.Len() != 0 {
		t.Errorf("quiet logger wrote %q", b.String())
	}
}

func TestSetLoggerSwaps(t *testing.T) {
	var b bytes.Buffer
	SetLogger(New(&b, false, false))
	defer SetLogger(nil)
	Logger().Warn("swapped")
	if !strings.Contains(b.String(), "swapped") {
		t.Fatalf("SetLogger did not take effect: %q", b.String())
	}
}
