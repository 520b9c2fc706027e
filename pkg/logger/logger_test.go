package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_ReturnsUsableLogger(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var buf bytes.Buffer
	// Events must chain off a local: the returned Logger is a value.
	l := Init(Options{Level: "info", Output: &buf})
	l.Error().Str("component", "startup").Msg("configuration failed")

	out := buf.String()
	if !strings.Contains(out, `"configuration failed"`) {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, `"component":"startup"`) {
		t.Fatalf("expected field in output, got %q", out)
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})

	l := Get()
	l.Info().Msg("routed")

	if !strings.Contains(first.String(), "routed") {
		t.Fatalf("expected output on first writer, got %q", first.String())
	}
	if second.Len() != 0 {
		t.Fatalf("second Init should have no effect, got %q", second.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from Get before Init")
		}
	}()
	Get()
}

func TestLevelFiltering(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var buf bytes.Buffer
	l := Init(Options{Level: "warn", Output: &buf})

	l.Debug().Msg("dropped")
	l.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("debug message should be filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn message missing, got %q", out)
	}
}
