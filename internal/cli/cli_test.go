package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kanvax/pkg/errors"
	kio "github.com/matzehuels/kanvax/pkg/io"
)

const testDoc = `{
  "name": "board",
  "elements": [
    {"id": "a", "type": "image", "src": "a.png", "x": 10, "y": 0, "width": 100, "height": 50},
    {"id": "b", "type": "image", "src": "b.png", "x": 200, "y": 80, "width": 60, "height": 60},
    {"id": "f", "type": "frame", "x": 0, "y": 0, "width": 400, "height": 300}
  ]
}`

func writeTestDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(path, []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and an isolated config location.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()

	want := []string{
		"layout", "align", "distribute", "fit", "place",
		"snap", "resize", "zoom", "clip",
		"inspect", "preview", "view", "serve",
		"config", "cache", "completion",
	}
	have := make(map[string]bool)
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.Contains(out.String(), "kanvax") {
		t.Errorf("version output = %q, want it to mention kanvax", out.String())
	}
}

func TestAlignCommand(t *testing.T) {
	in := writeTestDoc(t)
	out := filepath.Join(filepath.Dir(in), "aligned.json")

	if err := execute(t, "align", in, "--mode", "top", "--ids", "a,b", "-o", out); err != nil {
		t.Fatalf("align error: %v", err)
	}
	doc, err := kio.ImportJSON(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, id := range []string{"a", "b"} {
		if e, _ := doc.Element(id); e.Y != 0 {
			t.Errorf("%s.Y = %v, want 0", id, e.Y)
		}
	}
	if f, _ := doc.Element("f"); f.X != 0 || f.Y != 0 {
		t.Errorf("unselected frame moved to %v,%v", f.X, f.Y)
	}
}

func TestLayoutCommandDefaultOutput(t *testing.T) {
	in := writeTestDoc(t)
	if err := execute(t, "layout", in, "-t", "grid", "--ids", "a,b", "--gap", "10"); err != nil {
		t.Fatalf("layout error: %v", err)
	}

	out := strings.TrimSuffix(in, ".json") + ".grid.json"
	doc, err := kio.ImportJSON(out)
	if err != nil {
		t.Fatalf("read %s: %v", out, err)
	}
	a, _ := doc.Element("a")
	b, _ := doc.Element("b")
	// Cells are 100x60 starting at the selection's top-left (10, 0).
	if a.X != 10 || a.Y != 0 || b.X != 120 || b.Y != 0 {
		t.Errorf("grid = a(%v,%v) b(%v,%v), want a(10,0) b(120,0)", a.X, a.Y, b.X, b.Y)
	}
}

func TestLayoutCommandUnknownType(t *testing.T) {
	in := writeTestDoc(t)
	if err := execute(t, "layout", in, "-t", "spiral"); err == nil {
		t.Error("layout -t spiral should fail")
	}
}

func TestResizeCommand(t *testing.T) {
	in := writeTestDoc(t)
	out := filepath.Join(filepath.Dir(in), "resized.json")

	if err := execute(t, "resize", in, "--id", "f", "--handle", "se", "--delta", "100,50", "-o", out); err != nil {
		t.Fatalf("resize error: %v", err)
	}
	doc, err := kio.ImportJSON(out)
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := doc.Element("f"); f.Width != 500 || f.Height != 350 {
		t.Errorf("frame size = %vx%v, want 500x350", f.Width, f.Height)
	}
}

func TestResizeCommandUnknownElement(t *testing.T) {
	in := writeTestDoc(t)
	err := execute(t, "resize", in, "--id", "zz")
	if !errors.Is(err, errors.ErrCodeElementNotFound) {
		t.Errorf("resize unknown id error = %v, want ELEMENT_NOT_FOUND", err)
	}
}

func TestSnapCommandWritesSnappedDocument(t *testing.T) {
	in := writeTestDoc(t)
	out := filepath.Join(filepath.Dir(in), "snapped.json")

	// b dragged so its left edge is 3 units from a's right edge (110).
	if err := execute(t, "snap", in, "--id", "b", "--to", "113,200", "-o", out); err != nil {
		t.Fatalf("snap error: %v", err)
	}
	doc, err := kio.ImportJSON(out)
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := doc.Element("b"); b.X != 110 {
		t.Errorf("b.X = %v, want 110", b.X)
	}
}

func TestConfigFlagMissingFile(t *testing.T) {
	err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "config", "show")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestAlignCommandRejectsControlCharsInOutput(t *testing.T) {
	in := writeTestDoc(t)
	out := filepath.Join(t.TempDir(), "bad\x01name.json")

	err := execute(t, "align", in, "--mode", "top", "-o", out)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want INVALID_PATH", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output %q was written", out)
	}
}

func TestZoomCommandRejectsNonFinitePointer(t *testing.T) {
	err := execute(t, "zoom", "--pointer", "inf,0", "--delta-y", "-100")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, output, suffix string
		want                  string
	}{
		{"board.json", "", "grid", "board.grid.json"},
		{"dir/board.json", "", "align", "dir/board.align.json"},
		{"board.json", "out.json", "grid", "out.json"},
		{"-", "", "grid", "-"},
		{"board.json", "-", "grid", "-"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.input, tt.output, tt.suffix); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.input, tt.output, tt.suffix, got, tt.want)
		}
	}
}
