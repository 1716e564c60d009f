package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/pipeline"
)

// captureStatus redirects status output for the duration of the test.
func captureStatus(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := statusOut
	statusOut = &buf
	t.Cleanup(func() { statusOut = prev })
	return &buf
}

func TestPrintStats(t *testing.T) {
	buf := captureStatus(t)
	printStats(pipeline.Stats{Elements: 5, Selected: 3, Updated: 2, Duration: 1500 * time.Microsecond})

	out := buf.String()
	for _, want := range []string{"5 elements", "3 selected", "2 moved", "1.5ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("printStats() output %q missing %q", out, want)
		}
	}
}

func TestPrintRenderStats(t *testing.T) {
	tests := []struct {
		cached bool
		want   string
	}{
		{true, "cached"},
		{false, "fresh"},
	}
	for _, tt := range tests {
		buf := captureStatus(t)
		printRenderStats(4, tt.cached)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("printRenderStats(cached=%v) = %q, want %q", tt.cached, buf.String(), tt.want)
		}
	}
}

func TestPrintViewport(t *testing.T) {
	buf := captureStatus(t)
	printViewport(0.5, canvas.Pt(-10, 20.25))

	out := buf.String()
	if !strings.Contains(out, "0.5") || !strings.Contains(out, "-10, 20.25") {
		t.Errorf("printViewport() = %q", out)
	}
}

func TestFormatSize(t *testing.T) {
	if got := formatSize(120, 80.5); got != "120 x 80.5" {
		t.Errorf("formatSize() = %q, want %q", got, "120 x 80.5")
	}
}
