package utils

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLoggerRoutesErrorsSeparately(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut)

	l.Info("loaded %d rows", 3)
	l.Warn("odd value %q", "x")
	l.Debug("sample")
	l.Error("boom: %v", "disk full")

	if !strings.Contains(out.String(), "loaded 3 rows") {
		t.Errorf("info line missing from stdout: %q", out.String())
	}
	if !strings.Contains(out.String(), `odd value "x"`) {
		t.Errorf("warn line missing from stdout: %q", out.String())
	}
	if strings.Contains(out.String(), "boom") {
		t.Errorf("error line leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom: disk full") {
		t.Errorf("error line missing from stderr: %q", errOut.String())
	}
	if got := strings.Count(out.String(), "\n"); got != 3 {
		t.Errorf("stdout lines: got %d, want 3", got)
	}
}

func TestLoggerTagsAlignWithColour(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut)
	l.Info("msg")
	l.Warn("msg")
	l.Debug("msg")
	l.Error("msg")

	ansi := regexp.MustCompile("\x1b\\[[0-9;]*m")
	lines := strings.Split(strings.TrimSpace(out.String()+errOut.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}

	want := strings.Index(ansi.ReplaceAllString(lines[0], ""), "msg")
	for _, line := range lines {
		if !ansi.MatchString(line) {
			t.Errorf("expected coloured tag in %q", line)
		}
		if got := strings.Index(ansi.ReplaceAllString(line, ""), "msg"); got != want {
			t.Errorf("message column: got %d, want %d in %q", got, want, line)
		}
	}
}
